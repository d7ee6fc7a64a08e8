package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smallbiznis/invoicedesk/internal/clock"
	"github.com/smallbiznis/invoicedesk/internal/config"
	"github.com/smallbiznis/invoicedesk/internal/editor"
	"github.com/smallbiznis/invoicedesk/internal/logger"
	"github.com/smallbiznis/invoicedesk/internal/render"
	"github.com/smallbiznis/invoicedesk/internal/server"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		clock.Module,
		fx.Provide(RegisterSnowflake),
		fx.Provide(prometheus.NewRegistry),

		editor.Module,
		fx.Provide(
			func(e *editor.Editor) render.DocumentSource { return e },
			render.NewPDFRenderer,
		),
		fx.Invoke(func(e *editor.Editor, r *render.PDFRenderer) {
			e.BindExporter(r)
		}),

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
