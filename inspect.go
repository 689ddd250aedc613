package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/plexverse/serverready/descriptor"
	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <" + descriptor.FileName + ">",
		Short: "Validate a plugin descriptor and print its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := descriptor.Read(args[0])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "name\t%s\n", d.Name)
			fmt.Fprintf(w, "version\t%s\n", d.Version)
			fmt.Fprintf(w, "main\t%s\n", d.Main)
			fmt.Fprintf(w, "api-version\t%s\n", d.APIVersion)
			if len(d.Authors) > 0 {
				fmt.Fprintf(w, "authors\t%s\n", strings.Join(d.Authors, ", "))
			}
			for _, dep := range d.Bootstrap {
				fmt.Fprintf(w, "bootstrap\t%s\t%s\trequired=%t\n", dep.Name, dep.Load, dep.Required)
			}
			for _, dep := range d.Server {
				fmt.Fprintf(w, "server\t%s\t%s\trequired=%t\n", dep.Name, dep.Load, dep.Required)
			}
			return w.Flush()
		},
	}
}
