package k8s

import "fmt"

// NotFoundError represents a "not found" case that is not an error.
type NotFoundError struct {
	Resource  string
	Namespace string
	Name      string
}

func (e *NotFoundError) Error() string {
	if e.Namespace == "" {
		return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
	}

	return fmt.Sprintf("%s %s/%s not found", e.Resource, e.Namespace, e.Name)
}

func (e *NotFoundError) IsNotFound() {}
