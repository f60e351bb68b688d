package registry

import (
	"todo-backend/pkg/adapter/controller"
	"todo-backend/pkg/infrastructure/datastore"
)

type registry struct {
	gateway        *datastore.Gateway
	strictNotFound bool
}

// Registry is an interface of registry
type Registry interface {
	NewController() controller.Controller
}

// RegistryOptions contains optional behaviour for registry
type RegistryOptions struct {
	StrictNotFound bool
}

// New registers entire controller with dependencies
func New(gateway *datastore.Gateway) Registry {
	return &registry{gateway: gateway}
}

// NewWithOptions registers entire controller with additional options
func NewWithOptions(gateway *datastore.Gateway, opts RegistryOptions) Registry {
	return &registry{
		gateway:        gateway,
		strictNotFound: opts.StrictNotFound,
	}
}

// NewController generates controllers
func (r *registry) NewController() controller.Controller {
	return controller.Controller{
		Todo: r.NewTodoController(),
	}
}
