package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newGeometryCommand() *cobra.Command {
	options := layoutOptions{}
	pretty := false

	cmd := &cobra.Command{
		Use:   "geometry [input]",
		Short: "Print the computed chart geometry as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			geometry, err := options.layoutFile(args[0])
			if err != nil {
				return err
			}

			var encoded []byte
			if pretty {
				encoded, err = json.MarshalIndent(geometry, "", "  ")
			} else {
				encoded, err = json.Marshal(geometry)
			}
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

			return err
		},
	}

	options.bind(cmd)
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}
