// Package response holds the JSON envelope of the operator API.
package response

type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusOk    = "ok"
	StatusError = "error"
)

func Ok(data any) Response {
	return Response{Status: StatusOk, Data: data}
}

func Error(msg string) Response {
	return Response{Status: StatusError, Error: msg}
}
