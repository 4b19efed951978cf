// Item delete command removes a catalog entry, with a grace period during
// which the deletion can be undone.
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/a-rout/price-calculator-app/pkg/types"
	"github.com/a-rout/price-calculator-app/pkg/undo"
)

var deleteGrace time.Duration

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <item>",
	Short: "Delete an item from the catalog",
	Long: `Delete removes an item and drops it from the recently-used list. The
deletion stays undoable for a grace period (press Enter to restore); pass
--grace 0 to delete immediately.

The item may be referenced by id or name.

Example:
  perkg item delete Rice
  perkg item delete Rice --grace 10s
  perkg item delete Rice --grace 0`,
	Args: cobra.ExactArgs(1),
	RunE: runItemDelete,
}

func init() {
	itemDeleteCmd.Flags().DurationVar(&deleteGrace, "grace", 0, "undo window (default: undo_grace from config.yaml)")
}

func runItemDelete(cmd *cobra.Command, args []string) error {
	stores, err := openStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, "item delete:", err)
		os.Exit(exitSysError)
	}
	defer stores.Close()

	item, err := findItem(stores.items, args[0])
	if err != nil {
		return err
	}

	removed, found, err := stores.items.Delete(item.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "item delete:", err)
		os.Exit(exitSysError)
	}
	if !found {
		return fmt.Errorf("item %q not found", args[0])
	}

	grace := configUndoGrace
	if cmd.Flags().Changed("grace") {
		grace = deleteGrace
	}
	if grace <= 0 {
		if flagJSON {
			return printJSON(map[string]string{"deleted": removed.ID, "name": removed.Name})
		}
		fmt.Printf("Deleted %s.\n", removed.Name)
		return nil
	}

	return undoWindow(stores, removed, grace)
}

// undoWindow keeps the deletion reversible until the grace period ends.
// Pressing Enter restores the item; letting the countdown elapse makes the
// deletion final.
func undoWindow(stores *appStores, removed types.Item, grace time.Duration) error {
	ctl := undo.New[types.Item](grace)
	defer ctl.Close()

	ctl.Stage(removed, removed.Name)
	fmt.Printf("Deleted %s. Press Enter within %s to undo.\n", removed.Name, grace)

	enter := make(chan struct{})
	go func() {
		// Only a completed line counts as intent; a closed stdin must not
		// trigger a restore.
		if _, err := bufio.NewReader(os.Stdin).ReadString('\n'); err == nil {
			close(enter)
		}
	}()

	for {
		select {
		case <-enter:
			enter = nil
			item, _, ok := ctl.Undo()
			if !ok {
				// The countdown won the race; its event is on the feed.
				continue
			}
			if err := stores.items.Put(item); err != nil {
				fmt.Fprintln(os.Stderr, "item delete: restore:", err)
				os.Exit(exitSysError)
			}
		case ev := <-ctl.Events():
			switch ev.Kind {
			case undo.EventRestored:
				fmt.Printf("Restored %s.\n", ev.Action)
			case undo.EventExpired:
				fmt.Printf("%s permanently deleted.\n", ev.Action)
			}
			return nil
		}
	}
}
