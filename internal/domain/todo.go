package domain

import "fmt"

// Todo is the read-only record served by the todos service
type Todo struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

// NewTodo builds the todo for name
func NewTodo(name string) Todo {
	return Todo{
		Name: name,
		Text: fmt.Sprintf("You have to do %s", name),
	}
}
