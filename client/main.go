//go:build js && wasm

// Command client is the browser side of the landing page. Build it with
// GOOS=js GOARCH=wasm and place the output at <static_dir>/app.wasm.
package main

import (
	"go.uber.org/zap"

	"recon-landing/pkg/contactform"
	"recon-landing/pkg/dom"
	"recon-landing/pkg/navigator"
	"recon-landing/pkg/services"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}

	nav := navigator.New(dom.Document(), logger)
	form := contactform.NewController(services.NewLogSink(logger))

	binding := dom.Bind(nav, form, logger)
	defer binding.Release()

	logger.Info("client ready")

	// event callbacks run only while main is alive
	select {}
}
