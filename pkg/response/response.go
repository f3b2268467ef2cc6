package response

// Envelope wraps every workflow response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKMessage(data interface{}, msg string) Envelope {
	return Envelope{Success: true, Data: data, Message: msg}
}

func Fail(msg string) Envelope {
	return Envelope{Success: false, Message: msg}
}
