package main

import "github.com/nodeadmin/geneweaver-core/cli"

func main() {
	cli.Execute()
}
