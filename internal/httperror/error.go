package httperror

// Error is the body of every error response.
type Error struct {
	Message string `json:"error" example:"the transaction amount must be positive"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
