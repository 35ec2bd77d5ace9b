package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"treeline/internal/config"
	"treeline/internal/errors"
	"treeline/internal/ops"
	"treeline/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(api ops.API, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "treeline",
		Usage:   "Outliner bridge for MCP clients",
		Version: Version,
		Commands: []*cli.Command{
			docsCmd(api, cfg),
			readCmd(api, cfg),
			addCmd(api, cfg),
			editCmd(api, cfg),
			moveCmd(api, cfg),
			deleteCmd(api, cfg),
			inboxCmd(api, cfg),
			recentCmd(api, cfg),
			webCmd(api, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// docsCmd creates the docs command.
func docsCmd(api ops.API, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "docs",
		Usage: "List documents visible to the configured token",
		Action: func(c *cli.Context) error {
			output, err := ops.ListDocuments(context.Background(), api, cfg)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// readCmd creates the read command.
func readCmd(api ops.API, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "read",
		Usage:     "Read a document (or one subtree) as indented outline text",
		ArgsUsage: "<document-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "node", Aliases: []string{"n"}, Usage: "Node id or deep link; reads only that subtree"},
			&cli.IntFlag{Name: "depth", Aliases: []string{"d"}, Value: -1, Usage: "Depth limit (0 = immediate children only, -1 = unlimited)"},
			&cli.BoolFlag{Name: "notes", Usage: "Emit note lines beneath their nodes"},
			&cli.BoolFlag{Name: "no-checked", Usage: "Hide checked items and their subtrees"},
		},
		Action: func(c *cli.Context) error {
			input := ops.ReadInput{
				DocumentID:   c.Args().First(),
				NodeID:       c.String("node"),
				IncludeNotes: c.Bool("notes"),
			}
			if d := c.Int("depth"); d >= 0 {
				input.MaxDepth = &d
			}
			if c.Bool("no-checked") {
				includeChecked := false
				input.IncludeChecked = &includeChecked
			}

			output, err := ops.Read(context.Background(), api, cfg, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// addCmd creates the add command.
func addCmd(api ops.API, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Insert outline text under a parent (reads text from stdin unless --text is given)",
		ArgsUsage: "<document-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "Outline text to insert"},
			&cli.StringFlag{Name: "parent", Aliases: []string{"p"}, Usage: "Parent node id (defaults to the document root)"},
			&cli.BoolFlag{Name: "top", Usage: "Insert before existing children instead of appending"},
		},
		Action: func(c *cli.Context) error {
			text := c.String("text")
			if text == "" && stdinHasData() {
				var err error
				text, err = readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
			}
			if text == "" {
				return outputError(errors.NewInvalidRequest("outline text must be given via --text or stdin"))
			}

			output, err := ops.Insert(context.Background(), api, cfg, ops.InsertInput{
				DocumentID: c.Args().First(),
				ParentID:   c.String("parent"),
				Text:       text,
				AtTop:      c.Bool("top"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// editCmd creates the edit command.
func editCmd(api ops.API, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Overwrite a subset of one node's fields",
		ArgsUsage: "<document-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "node", Aliases: []string{"n"}, Required: true, Usage: "Node id or deep link"},
			&cli.StringFlag{Name: "content", Usage: "New single-line content"},
			&cli.StringFlag{Name: "note", Usage: "New note text"},
			&cli.BoolFlag{Name: "checked", Usage: "Set the checked state"},
			&cli.BoolFlag{Name: "checkbox", Usage: "Set whether the node has a checkbox"},
			&cli.IntFlag{Name: "heading", Value: -1, Usage: "Heading level 0-3 (0 = plain item)"},
			&cli.IntFlag{Name: "color", Value: -1, Usage: "Color label 0-6"},
		},
		Action: func(c *cli.Context) error {
			input := ops.EditInput{
				DocumentID: c.Args().First(),
				NodeID:     c.String("node"),
			}
			if c.IsSet("content") {
				content := c.String("content")
				input.Content = &content
			}
			if c.IsSet("note") {
				note := c.String("note")
				input.Note = &note
			}
			if c.IsSet("checked") {
				checked := c.Bool("checked")
				input.Checked = &checked
			}
			if c.IsSet("checkbox") {
				checkbox := c.Bool("checkbox")
				input.Checkbox = &checkbox
			}
			if h := c.Int("heading"); h >= 0 {
				input.Heading = &h
			}
			if col := c.Int("color"); col >= 0 {
				input.Color = &col
			}

			output, err := ops.Edit(context.Background(), api, cfg, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// moveCmd creates the move command.
func moveCmd(api ops.API, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "move",
		Usage:     "Move a node to a new parent or next to a sibling",
		ArgsUsage: "<document-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "node", Aliases: []string{"n"}, Required: true, Usage: "Node id or deep link to move"},
			&cli.StringFlag{Name: "parent", Aliases: []string{"p"}, Usage: "Absolute mode: new parent id"},
			&cli.IntFlag{Name: "index", Value: -1, Usage: "Absolute mode: position under the parent (-1 = append)"},
			&cli.StringFlag{Name: "before", Usage: "Relative mode: place immediately before this node id or link"},
			&cli.StringFlag{Name: "after", Usage: "Relative mode: place immediately after this node id or link"},
		},
		Action: func(c *cli.Context) error {
			input := ops.MoveInput{
				DocumentID: c.Args().First(),
				NodeID:     c.String("node"),
				ParentID:   c.String("parent"),
				Before:     c.String("before"),
				After:      c.String("after"),
			}
			if c.IsSet("index") {
				index := c.Int("index")
				input.Index = &index
			}

			output, err := ops.Move(context.Background(), api, cfg, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(api ops.API, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a node and its entire subtree",
		ArgsUsage: "<document-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "node", Aliases: []string{"n"}, Required: true, Usage: "Node id or deep link to delete"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Delete(context.Background(), api, cfg, ops.DeleteInput{
				DocumentID: c.Args().First(),
				NodeID:     c.String("node"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// inboxCmd creates the inbox command.
func inboxCmd(api ops.API, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "inbox",
		Usage:     "Capture one item into the inbox document",
		ArgsUsage: "[content]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "note", Usage: "Optional note"},
			&cli.BoolFlag{Name: "checkbox", Usage: "Give the item a checkbox"},
			&cli.BoolFlag{Name: "checked", Usage: "Initial checked state (requires --checkbox)"},
			&cli.BoolFlag{Name: "top", Usage: "Insert at the first inbox position instead of appending"},
		},
		Action: func(c *cli.Context) error {
			content := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if content == "" && stdinHasData() {
				var err error
				content, err = readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
			}

			output, err := ops.Inbox(context.Background(), api, cfg, ops.InboxInput{
				Content:  content,
				Note:     c.String("note"),
				Checkbox: c.Bool("checkbox"),
				Checked:  c.Bool("checked"),
				AtTop:    c.Bool("top"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// recentCmd creates the recent command.
func recentCmd(api ops.API, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "recent",
		Usage:     "List a document's most recently modified or created nodes",
		ArgsUsage: "<document-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "by", Value: "modified", Usage: "Ordering timestamp: modified|created"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 20, Usage: "Maximum items to return"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Recent(context.Background(), api, cfg, ops.RecentInput{
				DocumentID: c.Args().First(),
				By:         c.String("by"),
				Limit:      c.Int("limit"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// webCmd creates the web command.
func webCmd(api ops.API, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve a read-only HTML preview of remote documents",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Address to bind"},
			&cli.IntFlag{Name: "port", Value: 8421, Usage: "Port to listen on"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(api, cfg, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if tErr, ok := err.(*errors.TreelineError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", tErr.Code, tErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}
