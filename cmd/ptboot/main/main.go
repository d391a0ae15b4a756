package main

import (
	"fmt"
	"os"

	ptboot "github.com/jive-vlbi/ptboot/cmd/ptboot"
	"github.com/jive-vlbi/ptboot/pkg/ui/styles"
)

func main() {
	rootCmd := ptboot.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
