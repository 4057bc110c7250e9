package main

import "pitchbuild/cmd/pb/root"

func main() {
	root.Execute()
}
