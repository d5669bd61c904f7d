package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

func (a *App) Categories(ctx context.Context) error {
	for i, c := range a.directory.Categories(ctx) {
		printlnFn(fmt.Sprintf("%3d. %s", i+1, c.Name))
	}
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	if !a.canManage() {
		printlnFn("Managing categories requires the admin role")
		return nil
	}

	name, err := GetSimpleText(a.reader, "Category name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		printlnFn("Cancelled")
		return nil
	}

	a.ops.Lock()
	_, err = a.directory.AddCategory(ctx, name, a.actor)
	a.ops.Unlock()
	if err != nil {
		return err
	}
	printlnFn("Added category", name)
	return nil
}

func (a *App) DeleteCategory(ctx context.Context, args []string) error {
	if !a.canManage() {
		printlnFn("Managing categories requires the admin role")
		return nil
	}

	categories := a.directory.Categories(ctx)
	if len(args) == 0 {
		printlnFn("Usage: delcat <n> (run 'cats' first)")
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(categories) {
		printlnFn("Usage: delcat <n> (run 'cats' first)")
		return nil
	}

	target := categories[n-1]
	a.ops.Lock()
	err = a.directory.DeleteCategory(ctx, target.ID, a.actor)
	a.ops.Unlock()
	if err != nil {
		return err
	}
	printlnFn("Deleted category", target.Name)
	return nil
}
