package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasvw/gameplan/internal/model"
	"github.com/lucasvw/gameplan/internal/reconcile"
	"github.com/lucasvw/gameplan/internal/scheduler"
)

// RemoteAPI is the coaching-backend surface the update loop depends on. The
// concrete implementation lives in internal/api; tests substitute a fake.
type RemoteAPI interface {
	GetActivity(ctx context.Context) (model.ActivitySummary, error)
	LogActivity(ctx context.Context, minutes int) error
	GetDailyTasks(ctx context.Context, date string) (model.DayDetail, error)
	SaveTaskCompletion(ctx context.Context, taskNumber int, completed bool, date string) error
	GetSessions(ctx context.Context) ([]reconcile.Session, error)
	SetMember(memberID string)
	MemberID() string
}

const fetchTimeout = 20 * time.Second

// fetchSessionsCmd tags the result with the month/year it was issued for so
// a stale response can never overwrite a fresher month's map.
func (m Model) fetchSessionsCmd(year int, month time.Month) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		if api == nil {
			return SessionsFetchedMsg{Year: year, Month: month}
		}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		sessions, err := api.GetSessions(ctx)
		return SessionsFetchedMsg{Year: year, Month: month, Sessions: sessions, Err: err}
	}
}

func (m Model) fetchDayDetailCmd(date string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		if api == nil {
			return DayDetailMsg{Date: date}
		}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		detail, err := api.GetDailyTasks(ctx, date)
		return DayDetailMsg{Date: date, Detail: detail, Err: err}
	}
}

func (m Model) fetchActivityCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		if api == nil {
			return ActivityFetchedMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		summary, err := api.GetActivity(ctx)
		return ActivityFetchedMsg{Summary: summary, Err: err}
	}
}

func (m Model) saveTaskCmd(date string, taskNumber int, completed bool) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		if api == nil {
			return TaskSavedMsg{Date: date, TaskNumber: taskNumber, Completed: completed}
		}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		err := api.SaveTaskCompletion(ctx, taskNumber, completed, date)
		return TaskSavedMsg{Date: date, TaskNumber: taskNumber, Completed: completed, Err: err}
	}
}

func (m Model) logActivityCmd(minutes int) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		if api == nil {
			return ActivityLoggedMsg{Minutes: minutes}
		}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		err := api.LogActivity(ctx, minutes)
		return ActivityLoggedMsg{Minutes: minutes, Err: err}
	}
}

func waitForRefreshCmd(ch <-chan scheduler.RefreshEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return RefreshDueMsg{Event: ev}
	}
}
