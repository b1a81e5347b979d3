package services

import "github.com/COMS4153EcommerceProject/Composite-microservice/clients"

// ServiceError carries the HTTP status a controller should respond with.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// fromUpstream maps a classified upstream failure onto a service error,
// preserving the 404-vs-502 distinction the client already made.
func fromUpstream(err *clients.Error) *ServiceError {
	return &ServiceError{
		StatusCode: err.Code,
		Message:    err.Error(),
	}
}
