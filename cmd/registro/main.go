// Command registro is the command-line interface for a running registrod
// daemon.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/registrolabs/registro/pkg/sdk"
)

// overridden during build with ldflags
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "registro",
		Usage:   "Interact with the registro resource registry",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "Base URL of the registro daemon",
				Value:   "http://localhost:8080",
				Sources: cli.EnvVars(sdk.AddrEnv),
			},
		},
		Commands: []*cli.Command{
			listCmd(),
			getCmd(),
			createCmd(),
			healthCmd(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func clientFrom(cmd *cli.Command) *sdk.Client {
	return sdk.Connect(cmd.String("addr"))
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List all records in insertion order",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			records, err := clientFrom(cmd).List()
			if err != nil {
				return err
			}
			return printJSON(records)
		},
	}
}

func getCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Fetch a single record by id",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return fmt.Errorf("usage: registro get <id>")
			}
			id, err := strconv.Atoi(cmd.Args().First())
			if err != nil {
				return fmt.Errorf("id must be an integer, got %q", cmd.Args().First())
			}

			rec, err := clientFrom(cmd).Get(id)
			if err != nil {
				return err
			}
			return printJSON(rec)
		},
	}
}

func createCmd() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a new record",
		ArgsUsage: "<name> <email>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 2 {
				return fmt.Errorf("usage: registro create <name> <email>")
			}

			rec, err := clientFrom(cmd).Create(cmd.Args().Get(0), cmd.Args().Get(1))
			if err != nil {
				return err
			}
			return printJSON(rec)
		},
	}
}

func healthCmd() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Check that the daemon is reachable and healthy",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := clientFrom(cmd).Health(); err != nil {
				return err
			}
			fmt.Println("OK")
			return nil
		},
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
