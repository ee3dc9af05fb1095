package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leftmike/gcodegen"
	"github.com/leftmike/gcodegen/internal/log"
)

var (
	previewOutput string
	previewGCode  string
)

var PreviewCmd = &cobra.Command{
	Use:   "preview [commands-file]",
	Short: "Run shape commands and write an HTML page showing the toolpath",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := "stdin"
		var in io.Reader = os.Stdin
		if len(args) > 0 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
			title = args[0]
		}

		gw := io.Discard
		if previewGCode != "" {
			f, err := os.Create(previewGCode)
			if err != nil {
				return err
			}
			defer f.Close()
			gw = f
		}

		var out io.Writer = os.Stdout
		if previewOutput != "" {
			f, err := os.Create(previewOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		rec, err := recordSession(in, gw, tooling, liftAtEnd)
		if err != nil {
			return err
		}
		log.Info("preview", "title", title, "moves", len(rec.moves))
		return writePreview(out, title, tooling, rec.moves)
	},
}

func init() {
	PreviewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "write the page to a file")
	PreviewCmd.Flags().StringVar(&previewGCode, "gcode", "", "also write the program to a file")

	RootCmd.AddCommand(PreviewCmd)
}

type move struct {
	rapid bool
	pos   gcodegen.Position
}

// recorder is a Machine that keeps every move and passes it on to next.
type recorder struct {
	next  gcodegen.Machine
	moves []move
}

func (r *recorder) RapidTo(pos gcodegen.Position, feed float64) error {
	r.moves = append(r.moves, move{rapid: true, pos: pos})
	return r.next.RapidTo(pos, feed)
}

func (r *recorder) LinearTo(pos gcodegen.Position, feed float64) error {
	r.moves = append(r.moves, move{pos: pos})
	return r.next.LinearTo(pos, feed)
}

func recordSession(in io.Reader, gw io.Writer, t gcodegen.Tooling, lift bool) (*recorder, error) {
	w := gcodegen.NewWriter(gw)
	rec := &recorder{next: w}
	sess := gcodegen.NewSession(bufio.NewReader(in), w, gcodegen.NewEmitter(rec, t))
	sess.Policy.LiftAtEndOfMove = lift
	sess.Echo = true
	err := sess.Run()
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func point(pos gcodegen.Position) string {
	return fmt.Sprintf("{x: %s, y: %s, z: %s}", gcodegen.Number(pos.X), gcodegen.Number(pos.Y),
		gcodegen.Number(pos.Z))
}

func writePreview(w io.Writer, title string, t gcodegen.Tooling, moves []move) error {
	config := fmt.Sprintf("  startPos: %s,\n  cutDepth: %s,\n  safeHeight: %s,",
		point(gcodegen.NewState(t).Pos), gcodegen.Number(t.CutDepth),
		gcodegen.Number(t.SafeHeight))

	var cmds strings.Builder
	for _, m := range moves {
		if m.rapid {
			fmt.Fprintf(&cmds, "  {rapidTo: %s},\n", point(m.pos))
		} else {
			fmt.Fprintf(&cmds, "  {linearTo: %s},\n", point(m.pos))
		}
	}

	_, err := fmt.Fprintf(w, indexHTML, title, config, cmds.String())
	return err
}
