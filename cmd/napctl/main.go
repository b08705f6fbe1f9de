// napctl is a command line client for the price catalog server. It drives
// the same JSON API the web pages use: group management, catalog search,
// settings, and downloading the Word export.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gchalakovmmi/nap/internal/adapter"
	"github.com/gchalakovmmi/nap/internal/logger"
)

const usage = `napctl - price catalog server client

Usage:
  napctl [-s address] [-timeout duration] <command> [arguments]

Commands:
  groups                           list groups
  group create <name>              create a group
  group rename <id> <name>         rename a group
  group delete <id>                delete a group
  items <group-id>                 list item IDs in a group
  item add <group-id> <item-id>    add a catalog item to a group
  item remove <group-id> <item-id> remove a catalog item from a group
  search <query> [page]            search the catalog
  settings                         show settings
  settings set <db-path>           update the catalog table path
  export [directory]               download the Word export
`

func main() {
	serverAddress := flag.String("s", "localhost:5000", "server address")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Usage = func() { fmt.Fprint(os.Stderr, helpStyle.Render(usage)+"\n") }
	flag.Parse()

	log := logger.NewFileLogger("napctl")

	api, err := adapter.NewHTTPServerAdapter(*serverAddress, *timeout, log)
	if err != nil {
		fail(err)
	}

	if err := run(context.Background(), api, flag.Args()); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
	os.Exit(1)
}

func run(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("no command given")
	}

	switch args[0] {
	case "groups":
		return listGroups(ctx, api)
	case "group":
		return groupCommand(ctx, api, args[1:])
	case "items":
		if len(args) != 2 {
			return fmt.Errorf("usage: napctl items <group-id>")
		}
		return listItems(ctx, api, args[1])
	case "item":
		return itemCommand(ctx, api, args[1:])
	case "search":
		return search(ctx, api, args[1:])
	case "settings":
		return settingsCommand(ctx, api, args[1:])
	case "export":
		return export(ctx, api, args[1:])
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func listGroups(ctx context.Context, api adapter.ServerAdapter) error {
	groups, err := api.GetGroups(ctx)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Groups"))
	for _, group := range groups {
		fmt.Printf("%s %s\n", idStyle.Render(fmt.Sprintf("#%d", group.ID)), group.Name)
	}
	if len(groups) == 0 {
		fmt.Println(helpStyle.Render("(none)"))
	}
	return nil
}

func groupCommand(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: napctl group <create|rename|delete> ...")
	}

	switch args[0] {
	case "create":
		if len(args) != 2 {
			return fmt.Errorf("usage: napctl group create <name>")
		}
		group, err := api.CreateGroup(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Println(okStyle.Render(fmt.Sprintf("created group #%d %q", group.ID, group.Name)))
		return nil

	case "rename":
		if len(args) != 3 {
			return fmt.Errorf("usage: napctl group rename <id> <name>")
		}
		groupID, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := api.RenameGroup(ctx, groupID, args[2]); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("group renamed"))
		return nil

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: napctl group delete <id>")
		}
		groupID, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := api.DeleteGroup(ctx, groupID); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("group deleted"))
		return nil

	default:
		return fmt.Errorf("unknown group command %q", args[0])
	}
}

func listItems(ctx context.Context, api adapter.ServerAdapter, rawGroupID string) error {
	groupID, err := parseID(rawGroupID)
	if err != nil {
		return err
	}

	group, err := api.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	itemIDs, err := api.GetGroupItems(ctx, groupID)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Items in %q", group.Name)))
	for _, itemID := range itemIDs {
		fmt.Println(idStyle.Render(fmt.Sprintf("#%d", itemID)))
	}
	if len(itemIDs) == 0 {
		fmt.Println(helpStyle.Render("(none)"))
	}
	return nil
}

func itemCommand(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: napctl item <add|remove> <group-id> <item-id>")
	}

	groupID, err := parseID(args[1])
	if err != nil {
		return err
	}
	itemID, err := parseID(args[2])
	if err != nil {
		return err
	}

	switch args[0] {
	case "add":
		if err := api.AddItem(ctx, groupID, itemID); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("item added to group"))
		return nil
	case "remove":
		if err := api.RemoveItem(ctx, groupID, itemID); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("item removed from group"))
		return nil
	default:
		return fmt.Errorf("unknown item command %q", args[0])
	}
}

func search(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	query := ""
	page := 1
	if len(args) > 0 {
		query = args[0]
	}
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid page %q", args[1])
		}
		page = parsed
	}

	result, err := api.Search(ctx, query, page)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Results %d-%d of %d",
		(result.Page-1)*result.PerPage+1, (result.Page-1)*result.PerPage+len(result.Results), result.Total)))
	for _, item := range result.Results {
		fmt.Printf("%s %-12s %-40s %10s  %s\n",
			idStyle.Render(fmt.Sprintf("#%s", item.ID)),
			item.Code, item.Name, item.ClientPrice, item.Vendor)
	}
	fmt.Println(helpStyle.Render(fmt.Sprintf("page %d of %d", result.Page, result.TotalPages)))
	return nil
}

func settingsCommand(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	if len(args) == 0 {
		settings, err := api.GetSettings(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", titleStyle.Render("db_path:"), settings.DBPath)
		return nil
	}

	if args[0] != "set" || len(args) != 2 {
		return fmt.Errorf("usage: napctl settings set <db-path>")
	}
	if err := api.SetDBPath(ctx, args[1]); err != nil {
		return err
	}
	fmt.Println(okStyle.Render("settings updated"))
	return nil
}

func export(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	filename, content, err := api.DownloadExport(ctx)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	fmt.Println(okStyle.Render("saved " + path))
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
