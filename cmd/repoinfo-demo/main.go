// Command repoinfo-demo prints the metadata constants of the committed
// sample artifact, one per line. It exists to show what a consuming program
// sees after a `repoinfo sync` run.
package main

import (
	"fmt"

	"github.com/MKhiriev/go-repo-info/repoinfo"
)

func main() {
	fmt.Println(repoinfo.HostName)
	fmt.Println(repoinfo.HostUser)
	fmt.Println(repoinfo.HostOsNV)
	fmt.Println(repoinfo.BuildUser)
	fmt.Println(repoinfo.BuildTime)
	fmt.Println(repoinfo.ModifyTime)
	fmt.Println(repoinfo.RepoHash)
	fmt.Println(repoinfo.RepoUrl)
}
