package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"mdtree/lexer"
	"mdtree/parser"
	"mdtree/transpiler"
)

type config struct {
	Format        string `yaml:"format"`
	Strikethrough *bool  `yaml:"strikethrough"`
	Cache         string `yaml:"cache"`
}

var cacheBucket = []byte("render")

func main() {
	var (
		format     = flag.String("format", "", "output format: html, markdown or json")
		toc        = flag.Bool("toc", false, "print the table of contents instead of rendering")
		configPath = flag.String("config", "", "path to a YAML config file")
		cachePath  = flag.String("cache", "", "path to a bolt database used as render cache")
		serveAddr  = flag.String("serve", "", "listen address; serves POST /render instead of converting")
	)
	flag.Parse()

	log := newLogger()
	defer log.Sync()

	cfg := config{Format: string(transpiler.FormatHTML)}
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatal("config", zap.Error(err))
		}
		cfg = merge(cfg, loaded)
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *cachePath != "" {
		cfg.Cache = *cachePath
	}
	opts := lexer.DefaultOptions()
	if cfg.Strikethrough != nil {
		opts.Strikethrough = *cfg.Strikethrough
	}

	var db *bolt.DB
	if cfg.Cache != "" {
		var err error
		db, err = bolt.Open(cfg.Cache, 0o600, nil)
		if err != nil {
			log.Fatal("open cache", zap.Error(err))
		}
		defer db.Close()
	}

	if *serveAddr != "" {
		if err := serve(*serveAddr, opts, db, log); err != nil {
			log.Fatal("serve", zap.Error(err))
		}
		return
	}

	in := io.Reader(os.Stdin)
	out := io.Writer(os.Stdout)
	switch flag.NArg() {
	case 0:
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal("open input", zap.Error(err))
		}
		defer f.Close()
		in = f
	case 2:
		fi, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal("open input", zap.Error(err))
		}
		defer fi.Close()
		in = fi
		fo, err := os.Create(flag.Arg(1))
		if err != nil {
			log.Fatal("create output", zap.Error(err))
		}
		defer fo.Close()
		out = fo
	default:
		fmt.Fprintln(os.Stderr, "usage: mdtree [flags] [input [output]]")
		os.Exit(2)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		log.Fatal("read input", zap.Error(err))
	}

	if *toc {
		root, err := parser.Parse(string(data))
		if err != nil {
			log.Fatal("parse", zap.Error(err))
		}
		printTOC(out, parser.TableOfContents(root), 0)
		return
	}

	result, err := convert(db, string(data), transpiler.Format(cfg.Format), opts)
	if err != nil {
		log.Fatal("convert", zap.Error(err))
	}
	if _, err := io.WriteString(out, result); err != nil {
		log.Fatal("write output", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		if log, err := zap.NewDevelopment(); err == nil {
			return log
		}
	}
	log, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func loadConfig(path string) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func merge(base, over config) config {
	if over.Format != "" {
		base.Format = over.Format
	}
	if over.Strikethrough != nil {
		base.Strikethrough = over.Strikethrough
	}
	if over.Cache != "" {
		base.Cache = over.Cache
	}
	return base
}

// convert goes through the bolt cache when one is configured.
func convert(db *bolt.DB, src string, f transpiler.Format, opts lexer.Options) (string, error) {
	if db == nil {
		return transpiler.ConvertWith(src, f, opts)
	}
	key := []byte(transpiler.Key(src) + ":" + string(f))
	var cached string
	err := db.View(func(tx *bolt.Tx) error {
		if b := tx.Bucket(cacheBucket); b != nil {
			if v := b.Get(key); v != nil {
				cached = string(v)
			}
		}
		return nil
	})
	if err == nil && cached != "" {
		return cached, nil
	}
	out, err := transpiler.ConvertWith(src, f, opts)
	if err != nil {
		return "", err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(cacheBucket)
		if err != nil {
			return err
		}
		return b.Put(key, []byte(out))
	})
	return out, err
}

func serve(addr string, opts lexer.Options, db *bolt.DB, log *zap.Logger) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/render", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST only", http.StatusMethodNotAllowed)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f := transpiler.Format(r.URL.Query().Get("format"))
		if f == "" {
			f = transpiler.FormatHTML
		}
		out, err := convertBody(db, body, f, opts)
		if err != nil {
			log.Warn("render failed", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", contentType(f))
		io.WriteString(w, out)
	})
	log.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, mux)
}

func convertBody(db *bolt.DB, body []byte, f transpiler.Format, opts lexer.Options) (string, error) {
	if !utf8.Valid(body) {
		return "", parser.ErrInvalidInput
	}
	return convert(db, string(body), f, opts)
}

func contentType(f transpiler.Format) string {
	switch f {
	case transpiler.FormatJSON:
		return "application/json"
	case transpiler.FormatMarkdown:
		return "text/markdown; charset=utf-8"
	}
	return "text/html; charset=utf-8"
}

func printTOC(w io.Writer, entries []*parser.TOCEntry, depth int) {
	for _, e := range entries {
		if e.Text != "" {
			fmt.Fprintf(w, "%s- [%s](#%s)\n", strings.Repeat("  ", depth), e.Text, e.ID)
		}
		printTOC(w, e.Children, depth+1)
	}
}
