package main

import (
	_ "embed"
)

var (
	//go:embed data/flappy.yaml
	Default_yaml []byte
)
