package dto

// ErrorResponse — конверт ошибки для всех обработчиков.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
