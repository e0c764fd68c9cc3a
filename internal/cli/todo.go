package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/quitcard/internal/wire"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage the escape plan checklist",
	Long:  "Track the things to finish before handing in your notice",
}

var todoAddCmd = &cobra.Command{
	Use:   "add [title...]",
	Short: "Add a checklist item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		todo, err := wire.TodoService().AddTodo(context.Background(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Printf("✓ Added %s: %s\n", todo.ID, todo.Title)
		return nil
	},
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List checklist items",
	RunE: func(cmd *cobra.Command, args []string) error {
		todos, err := wire.TodoService().ListTodos(context.Background())
		if err != nil {
			return err
		}

		if len(todos) == 0 {
			fmt.Println("No checklist items yet")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDONE\tTITLE")
		fmt.Fprintln(w, "--\t----\t-----")
		for _, t := range todos {
			mark := "[ ]"
			if t.Done {
				mark = "[x]"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, mark, t.Title)
		}
		w.Flush()
		return nil
	},
}

var todoDoneCmd = &cobra.Command{
	Use:   "done [todo-id]",
	Short: "Mark a checklist item done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.TodoService().SetDone(context.Background(), args[0], true); err != nil {
			return err
		}
		fmt.Printf("✓ %s done\n", args[0])
		return nil
	},
}

var todoUndoneCmd = &cobra.Command{
	Use:   "undone [todo-id]",
	Short: "Mark a checklist item not done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.TodoService().SetDone(context.Background(), args[0], false); err != nil {
			return err
		}
		fmt.Printf("✓ %s reopened\n", args[0])
		return nil
	},
}

var todoDeleteCmd = &cobra.Command{
	Use:   "delete [todo-id]",
	Short: "Delete a checklist item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.TodoService().DeleteTodo(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoListCmd)
	todoCmd.AddCommand(todoDoneCmd)
	todoCmd.AddCommand(todoUndoneCmd)
	todoCmd.AddCommand(todoDeleteCmd)
}

// TodoCmd returns the todo command tree.
func TodoCmd() *cobra.Command {
	return todoCmd
}
