package main

import (
	"flag"
	"os"

	"cidash/pkg/client"
	"cidash/pkg/store"
	"cidash/pkg/util/config"
	"cidash/pkg/util/context"
	"cidash/pkg/watcher"

	"github.com/labstack/echo/v4"
	"github.com/neko-neko/echo-logrus/v2/log"
	"github.com/pkg/errors"
)

const pipelineIDParam = "pid"

func main() {
	configFile := flag.String("config", "", "path of the JSON config file")
	flag.Parse()

	// Create context and logger
	ctx := context.Background()
	l := log.MyLogger{Logger: ctx.Logger().Logger}

	config.SetConfigFile(*configFile)
	if err := config.ReadInConfig(); err != nil {
		l.Fatal(errors.Wrap(err, "failed to read config"))
		os.Exit(1)
	}
	dcfg, err := config.LoadDashboard()
	if err != nil {
		l.Fatal(err)
		os.Exit(1)
	}
	ccfg, err := config.LoadController()
	if err != nil {
		l.Fatal(err)
		os.Exit(1)
	}

	cli, err := client.FromConfig(ctx, dcfg)
	if err != nil {
		l.Fatal(errors.Wrap(err, "failed to instantiate client"))
		os.Exit(1)
	}
	s, err := store.NewInMemoryStore()
	if err != nil {
		l.Fatal(errors.Wrap(err, "failed to instantiate store"))
		os.Exit(1)
	}

	e := newServer(handlers{
		cli:     cli,
		store:   s,
		watcher: watcher.New(cli, watcher.Options{Store: s}),
	})
	e.Logger = &l

	e.Logger.Infof("http server started on %s, backend is %s", ccfg.Listen, dcfg.URI)
	e.Logger.Fatal(e.Start(ccfg.Listen))
}

// newServer returns the echo server with every route set up.
func newServer(h handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(correlationID)
	e.GET("/pipelines", h.ListPipelines)
	e.POST("/pipelines", h.CreatePipeline)
	e.GET("/jobs", h.ListJobs)
	e.GET("/pipelines/:"+pipelineIDParam+"/graph", h.PipelineGraph)
	e.POST("/pipelines/:"+pipelineIDParam+"/cancel", h.CancelPipeline)
	e.POST("/pipelines/:"+pipelineIDParam+"/update", h.UpdatePipeline)
	return e
}

type handlers struct {
	cli     client.Client
	store   store.ViewStore
	watcher *watcher.Watcher
}
