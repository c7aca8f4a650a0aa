package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosmd/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosmd",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosmd v%s\n", version.Version)
		fmt.Println("Shear and Moment Diagram Tool")
		fmt.Println("Beam loading via Macaulay singularity-function notation")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
