package dto

// ToolResult carries the conversational reply of one tool invocation.
type ToolResult struct {
	Tool  string `json:"tool" example:"view_schedule"`
	Reply string `json:"reply" example:"Your schedule:\nMonday:\n  10:10AM-11:25AM — CS 2110: Object-Oriented Programming"`
}
