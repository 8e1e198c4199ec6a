package dto

// Response envelope of every API answer; HTTP status is always 200
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}
