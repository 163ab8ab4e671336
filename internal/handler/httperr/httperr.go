package httperr

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// Response is the public error envelope. Detail entries are merged next to
// the message at the top level, so a supply conflict renders as
// {"error": "...", "remaining": 2}.
type Response struct {
	Status int            `json:"-"`
	Error  string         `json:"error"`
	Detail map[string]any `json:"-"`
}

func (r Response) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, len(r.Detail)+1)
	for k, v := range r.Detail {
		body[k] = v
	}
	body["error"] = r.Error
	return json.Marshal(body)
}

// AbortWithError records the original error on the context for the error
// middleware and logging, then writes the public response.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail map[string]any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
