package main

import "github.com/beatriciramos/CRM-Frontend/cmd/crmctl/cmd"

func main() {
	cmd.Execute()
}
