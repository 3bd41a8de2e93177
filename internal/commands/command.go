package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Type string

const (
	TypeGoto    Type = "goto"
	TypeMember  Type = "member"
	TypeRefresh Type = "refresh"
	TypeTrack   Type = "track"
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

// GotoArgs jumps the calendar to a month, given as "2025-01" or "2025-1".
type GotoArgs struct {
	Year  int
	Month time.Month
}

type MemberArgs struct {
	ID string
}

// RefreshArgs forces a refetch; Subject is one of sessions, tasks,
// activity, content, or all.
type RefreshArgs struct {
	Subject string
}

type TrackArgs struct {
	Minutes int
}

type Command struct {
	Type    Type
	Raw     string
	Goto    *GotoArgs
	Member  *MemberArgs
	Refresh *RefreshArgs
	Track   *TrackArgs
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
	case TypeGoto:
		return parseGoto(input, args)
	case TypeMember:
		return parseMember(input, args)
	case TypeRefresh:
		return parseRefresh(input, args)
	case TypeTrack:
		return parseTrack(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a month like 2025-01"}
	}
	yearStr, monthStr, ok := strings.Cut(args[0], "-")
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("cannot parse month: %s", args[0])}
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1970 || year > 9999 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid year: %s", yearStr)}
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid month: %s", monthStr)}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Year: year, Month: time.Month(month)}}, nil
}

func parseMember(raw string, args []string) (Command, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "member requires an id"}
	}
	return Command{Type: TypeMember, Raw: raw, Member: &MemberArgs{ID: args[0]}}, nil
}

func parseRefresh(raw string, args []string) (Command, error) {
	subject := "all"
	if len(args) > 0 {
		subject = strings.ToLower(args[0])
	}
	switch subject {
	case "sessions", "tasks", "activity", "content", "all":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown refresh subject: %s", subject)}
	}
	return Command{Type: TypeRefresh, Raw: raw, Refresh: &RefreshArgs{Subject: subject}}, nil
}

func parseTrack(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "track requires minutes"}
	}
	minutes, err := strconv.Atoi(args[0])
	if err != nil || minutes <= 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid minutes: %s", args[0])}
	}
	return Command{Type: TypeTrack, Raw: raw, Track: &TrackArgs{Minutes: minutes}}, nil
}
