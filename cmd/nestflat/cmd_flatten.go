package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/nestflat/flatten"
	"github.com/katalvlaran/nestflat/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// flattenCmd: nestflat flatten [file]
func (c *cli) flattenCmd() *cobra.Command {
	var (
		depth  int
		matrix bool
		copyOn bool
	)
	cmd := &cobra.Command{
		Use:   "flatten [file]",
		Short: "Flatten a nested array (generic or matrix mode)",
		Long: `Reads a JSON or YAML array from file (or stdin when file is "-" or omitted)
and prints it flattened. Flags override the config file.

JSON output needs string keys in any mapping kept as a leaf; use
--output yaml for mappings with other keys.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.cfg.Options()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("depth") {
				switch {
				case depth == int(flatten.Unbounded):
					opts = append(opts, flatten.WithUnboundedDepth())
				case depth < 0:
					return fmt.Errorf("--depth %d: use -1 for unbounded: %w", depth, flatten.ErrInvalidOption)
				default:
					opts = append(opts, flatten.WithDepth(depth))
				}
			}
			if cmd.Flags().Changed("matrix") {
				opts = append(opts, flatten.WithMatrix(matrix))
			}
			if cmd.Flags().Changed("copy") {
				opts = append(opts, flatten.WithCopy(copyOn))
			}

			doc, err := c.readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := flatten.Flatten(doc, opts...)
			if err != nil {
				c.logger.Error("flatten failed", zap.Error(err))
				return err
			}
			c.logger.Info("flattened", zap.Int("elements", len(out)))

			return c.writeOutput(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", -1, "maximum nesting levels to flatten (-1 = unbounded, 0 = untouched)")
	cmd.Flags().BoolVarP(&matrix, "matrix", "m", false, "treat the input as rectangular and infer its shape")
	cmd.Flags().BoolVar(&copyOn, "copy", false, "deep copy retained elements")

	return cmd
}

// shapeCmd: nestflat shape [file] --shape 3,3
func (c *cli) shapeCmd() *cobra.Command {
	var (
		dims   []int
		copyOn bool
	)
	cmd := &cobra.Command{
		Use:   "shape [file]",
		Short: "Flatten an array of a fixed, known shape",
		Long: `Builds a flattener for --shape (or the config's shape) and applies it.
Input that does not match the shape exactly is rejected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := c.cfg.ShapeValue()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("shape") {
				shape = flatten.Shape(dims)
			}
			if shape == nil {
				return fmt.Errorf("shape: no shape given (use --shape or the config file): %w", flatten.ErrInvalidArgument)
			}
			opts, err := c.cfg.Options()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("copy") {
				opts = append(opts, flatten.WithCopy(copyOn))
			}
			f, err := flatten.CreateFlatten(shape, opts...)
			if err != nil {
				return err
			}
			c.logger.Debug("flattener ready", zap.Ints("shape", shape), zap.Int("len", f.Len()), zap.Bool("copy", f.Copies()))

			doc, err := c.readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := f.Flatten(doc)
			if err != nil {
				c.logger.Error("shape mismatch", zap.Ints("shape", shape), zap.Error(err))
				return err
			}
			c.logger.Info("flattened", zap.Int("elements", len(out)))

			return c.writeOutput(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntSliceVarP(&dims, "shape", "s", nil, "comma-separated extents, e.g. 3,3")
	cmd.Flags().BoolVar(&copyOn, "copy", false, "deep copy retained elements")

	return cmd
}

// inferCmd: nestflat infer [file]
func (c *cli) inferCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "infer [file]",
		Short: "Print the shape matrix mode would assume for the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.readInput(cmd, args)
			if err != nil {
				return err
			}
			shape, err := flatten.InferShape(doc, flatten.Depth(depth))
			if err != nil {
				return err
			}
			c.logger.Debug("shape inferred", zap.Ints("shape", shape), zap.Stringer("depth", flatten.Depth(depth)))

			return c.writeOutput(cmd.OutOrStdout(), []int(shape))
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", -1, "maximum rank to infer (-1 = unbounded)")

	return cmd
}

// readInput decodes the document named by args[0], or stdin.
// YAML is a superset of JSON, so one decoder serves both.
func (c *cli) readInput(cmd *cobra.Command, args []string) (any, error) {
	var (
		r    io.Reader = cmd.InOrStdin()
		name           = "stdin"
	)
	if len(args) == 1 && args[0] != "-" {
		fh, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer fh.Close()
		r, name = fh, args[0]
	}

	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("input %s is empty: %w", name, flatten.ErrInvalidArgument)
		}
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	c.logger.Debug("input decoded", zap.String("source", name), zap.String("type", fmt.Sprintf("%T", doc)))

	return doc, nil
}

// writeOutput renders v in the configured format followed by a newline.
func (c *cli) writeOutput(w io.Writer, v any) error {
	switch c.cfg.Output {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			if i, leaf := firstUnencodable(v); i >= 0 {
				return fmt.Errorf("output element %d (%T) cannot be encoded as JSON (%v): %w", i, leaf, err, flatten.ErrInvalidArgument)
			}
			return fmt.Errorf("failed to encode output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}

// firstUnencodable finds the first element of a flattened result that
// encoding/json rejects, typically a YAML mapping with non-string keys.
// It returns -1 when v is not a flat result or every element encodes.
func firstUnencodable(v any) (int, any) {
	items, ok := v.([]any)
	if !ok {
		return -1, nil
	}
	for i, it := range items {
		if _, err := json.Marshal(it); err != nil {
			return i, it
		}
	}

	return -1, nil
}
