package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeSearch Type = "search"
	TypeFilter Type = "filter"
	TypeDone   Type = "done"
	TypeUndone Type = "undone"
	TypeDelete Type = "delete"
	TypeExport Type = "export"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title string
}

// SearchArgs carries the text filter; an empty Query clears it.
type SearchArgs struct {
	Query string
}

type FilterArgs struct {
	Priority string
	Status   string
}

type TaskIDArgs struct {
	ID int64
}

type ExportArgs struct {
	Format string
	Dir    string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Search *SearchArgs
	Filter *FilterArgs
	Done   *TaskIDArgs
	Undone *TaskIDArgs
	Delete *TaskIDArgs
	Export *ExportArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeSearch:
		return parseSearch(input, args)
	case TypeFilter:
		return parseFilter(input, args)
	case TypeDone:
		return parseTaskID(input, TypeDone, args)
	case TypeUndone:
		return parseTaskID(input, TypeUndone, args)
	case TypeDelete:
		return parseTaskID(input, TypeDelete, args)
	case TypeExport:
		return parseExport(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title}}, nil
}

func parseSearch(raw string, args []string) (Command, error) {
	query := strings.TrimSpace(strings.Join(args, " "))
	return Command{Type: TypeSearch, Raw: raw, Search: &SearchArgs{Query: query}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires priority: or status: arguments"}
	}
	out := FilterArgs{}
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "priority:"):
			value, ok := canonicalPriority(arg[len("priority:"):])
			if !ok {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid priority: %s", arg)}
			}
			out.Priority = value
		case strings.HasPrefix(lower, "status:"):
			value, ok := canonicalStatus(arg[len("status:"):])
			if !ok {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid status: %s", arg)}
			}
			out.Status = value
		default:
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unrecognized filter argument: %s", arg)}
		}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &out}, nil
}

func parseTaskID(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task id", typ)}
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task id: %s", args[0])}
	}
	cmd := Command{Type: typ, Raw: raw}
	switch typ {
	case TypeDone:
		cmd.Done = &TaskIDArgs{ID: id}
	case TypeUndone:
		cmd.Undone = &TaskIDArgs{ID: id}
	case TypeDelete:
		cmd.Delete = &TaskIDArgs{ID: id}
	}
	return cmd, nil
}

func parseExport(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "export requires a format (csv, json or pdf)"}
	}
	format := strings.ToLower(args[0])
	switch format {
	case "csv", "json", "pdf":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unsupported export format: %s", args[0])}
	}
	dir := ""
	if len(args) > 1 {
		dir = strings.Join(args[1:], " ")
	}
	return Command{Type: TypeExport, Raw: raw, Export: &ExportArgs{Format: format, Dir: dir}}, nil
}

func canonicalPriority(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "high":
		return "High", true
	case "medium":
		return "Medium", true
	case "low":
		return "Low", true
	case "all":
		return "All", true
	default:
		return "", false
	}
}

func canonicalStatus(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "pending":
		return "Pending", true
	case "completed":
		return "Completed", true
	case "all":
		return "All", true
	default:
		return "", false
	}
}
