package main

import (
	"context"

	"github.com/rijikit/riji/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
