// Command netpath prints the adjacency matrix of a network and the least-cost
// route between two of its nodes.
//
// Usage:
//
//	netpath [-network file.yaml | -load name] [-from B] [-to K]
//	        [-db netpath.db] [-save name] [-list] [-all] [-matrix=false]
//	        [-export name]
//
// Without -network or -load the built-in reference network is used.
// Environment: NETPATH_DB, NETPATH_WORKERS, NETPATH_LOG_LEVEL,
// NETPATH_LOG_FORMAT, NETPATH_NEO4J_URI (plus _DATABASE, _USERNAME,
// _PASSWORD, _TIMEOUT).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/netpath/core"
	"github.com/katalvlaran/netpath/dijkstra"
	"github.com/katalvlaran/netpath/internal/config"
	"github.com/katalvlaran/netpath/internal/graphdb"
	"github.com/katalvlaran/netpath/internal/logging"
	"github.com/katalvlaran/netpath/matrix"
	"github.com/katalvlaran/netpath/network"
	"github.com/katalvlaran/netpath/render"
	"github.com/katalvlaran/netpath/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Logging)

	err = run(ctx, os.Args[1:], os.Stdout, os.Stderr, cfg, logger)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		os.Exit(2)
	case errors.Is(err, core.ErrInvalidArgument):
		logger.Error("invalid argument", "error", err)
		os.Exit(1)
	default:
		logger.Error("netpath failed", "error", err)
		os.Exit(1)
	}
}

// errUsage marks flag parsing failures; the flag package has already printed them.
var errUsage = errors.New("usage error")

// errNeedStore is returned when -save, -load or -list is used without a database.
var errNeedStore = errors.New("a database is required (-db or NETPATH_DB)")

// options holds the parsed command line.
type options struct {
	networkFile string
	from, to    string
	dbPath      string
	save, load  string
	list        bool
	all         bool
	showMatrix  bool
	export      string
}

func parseFlags(args []string, cfg config.Config, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("netpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.networkFile, "network", "", "YAML network definition (default: reference network)")
	fs.StringVar(&o.from, "from", "B", "source node label")
	fs.StringVar(&o.to, "to", "K", "target node label")
	fs.StringVar(&o.dbPath, "db", cfg.Store.Path, "SQLite network store path")
	fs.StringVar(&o.save, "save", "", "save the network under this name")
	fs.StringVar(&o.load, "load", "", "load the network stored under this name")
	fs.BoolVar(&o.list, "list", false, "list stored networks")
	fs.BoolVar(&o.all, "all", false, "print routes from -from to every node")
	fs.BoolVar(&o.showMatrix, "matrix", true, "print the adjacency matrix")
	fs.StringVar(&o.export, "export", "", "export the network to Neo4j under this name")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return o, err
		}
		return o, fmt.Errorf("%w: %v", errUsage, err)
	}
	if o.networkFile != "" && o.load != "" {
		return o, fmt.Errorf("%w: -network and -load are mutually exclusive", errUsage)
	}

	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, cfg config.Config, logger *slog.Logger) error {
	o, err := parseFlags(args, cfg, stderr)
	if err != nil {
		return err
	}

	// 1) Optional store.
	var st *store.Store
	if o.dbPath != "" {
		st, err = store.New(o.dbPath)
		if err != nil {
			return err
		}
		defer st.Close()
		logger.Debug("store opened", "path", o.dbPath)
	}
	if st == nil && (o.save != "" || o.load != "" || o.list) {
		return errNeedStore
	}

	if o.list {
		names, err := st.List(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	// 2) Network.
	g, name, err := loadNetwork(ctx, o, st)
	if err != nil {
		return err
	}
	logger.Info("network ready", "name", name, "nodes", g.NodeCount(), "links", g.EdgeCount()/2)

	if o.save != "" {
		if err := st.Save(ctx, o.save, g); err != nil {
			return err
		}
		logger.Info("network saved", "name", o.save, "db", o.dbPath)
	}
	if o.export != "" {
		if err := exportNetwork(ctx, cfg.Graph, o.export, g); err != nil {
			return err
		}
		logger.Info("network exported", "name", o.export, "uri", cfg.Graph.URI)
	}

	// 3) Snapshot and answer.
	am, err := matrix.NewAdjacencyMatrix(g)
	if err != nil {
		return err
	}
	if o.showMatrix {
		if err := render.WriteMatrix(stdout, am); err != nil {
			return err
		}
	}
	if o.all {
		return writeAll(ctx, stdout, am, o.from, cfg.Query.Workers)
	}

	return render.WriteQuery(stdout, am, o.from, o.to)
}

// loadNetwork picks the network source: a stored network, a YAML file, or the reference network.
func loadNetwork(ctx context.Context, o options, st *store.Store) (*core.Graph, string, error) {
	switch {
	case o.load != "":
		g, err := st.Load(ctx, o.load)
		return g, o.load, err
	case o.networkFile != "":
		def, err := network.LoadYAML(o.networkFile)
		if err != nil {
			return nil, "", err
		}
		g, err := def.Build()
		return g, def.Name, err
	default:
		g, err := network.Reference()
		return g, network.ReferenceName, err
	}
}

// exportNetwork mirrors g into Neo4j using the configured connection.
func exportNetwork(ctx context.Context, gc config.GraphConfig, name string, g *core.Graph) error {
	ctx, cancel := context.WithTimeout(ctx, gc.Timeout)
	defer cancel()

	client, err := graphdb.NewNeo4jClient(ctx, graphdb.Options{
		URI:            gc.URI,
		Database:       gc.Database,
		Username:       gc.Username,
		Password:       gc.Password,
		MaxConnections: gc.MaxConnections,
	})
	if err != nil {
		return err
	}
	defer client.Close(context.Background())

	return graphdb.NewExporter(client).Export(ctx, name, g)
}

// writeAll prints one route line from `from` to every node, in index order.
func writeAll(ctx context.Context, w io.Writer, am *matrix.AdjacencyMatrix, from string, workers int) error {
	src, ok := am.IndexOf(from)
	if !ok {
		return fmt.Errorf("from %q: %w", from, render.ErrUnknownLabel)
	}
	queries := make([]dijkstra.Query, am.Size())
	for v := range queries {
		queries[v] = dijkstra.Query{Source: src, Target: v}
	}

	answers, err := dijkstra.Batch(ctx, am, queries, workers)
	if err != nil {
		return err
	}
	labels := am.Labels()
	for _, a := range answers {
		if _, err := fmt.Fprintf(w, "Shortest path from [%s -> %s] : ", from, labels[a.Target]); err != nil {
			return err
		}
		if err := render.WritePath(w, am, a.Path); err != nil {
			return err
		}
	}

	return nil
}
