package httperror

type Error struct {
	Message string `json:"error" example:"no token provided"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
