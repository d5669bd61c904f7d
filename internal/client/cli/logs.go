package cli

import (
	"context"
	"fmt"
	"time"
)

func (a *App) Logs(ctx context.Context) error {
	if !a.canManage() {
		printlnFn("Viewing the activity log requires the admin role")
		return nil
	}

	entries := a.audit.List(ctx)
	if len(entries) == 0 {
		printlnFn("Activity log is empty")
		return nil
	}
	for _, e := range entries {
		ts := time.UnixMilli(e.Timestamp).Format("2006-01-02 15:04:05")
		printlnFn(fmt.Sprintf("%s  %-15s %-10s %-16s %s", ts, e.UserName, e.UserRole, e.Action, e.Details))
	}
	return nil
}

func (a *App) ClearLogs(ctx context.Context) error {
	if !a.canManage() {
		printlnFn("Clearing the activity log requires the admin role")
		return nil
	}

	a.ops.Lock()
	err := a.audit.Clear(ctx)
	a.ops.Unlock()
	if err != nil {
		return err
	}
	printlnFn("Activity log cleared")
	return nil
}
