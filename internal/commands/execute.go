package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Goto    func(GotoArgs) (Result, error)
	Member  func(MemberArgs) (Result, error)
	Refresh func(RefreshArgs) (Result, error)
	Track   func(TrackArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeGoto:
		if handlers.Goto == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "goto handler not configured"}
		}
		return handlers.Goto(*cmd.Goto)
	case TypeMember:
		if handlers.Member == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "member handler not configured"}
		}
		return handlers.Member(*cmd.Member)
	case TypeRefresh:
		if handlers.Refresh == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "refresh handler not configured"}
		}
		return handlers.Refresh(*cmd.Refresh)
	case TypeTrack:
		if handlers.Track == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "track handler not configured"}
		}
		return handlers.Track(*cmd.Track)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
