// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command benchplot plots and summarises solver benchmark results.
//
//	⎣ ⇨ benchplot
//	benchplot <cmd> [flags] source [ source ... ]
//	<cmd> may be
//		plot
//		list
//	For help with a command, run benchplot <cmd> -h.
//
// A source is a json result file (optionally .gz, .bz2 or .zst, a local
// path, "-" for stdin or an s3://bucket/key object), a datastore
// experiment specification such as '{117213: "Vampire 4.8"}' with -s db,
// or a bench run directory with -s suite.  Only instances solved within
// the timeout are kept.
//
//	⎣ ⇨ benchplot plot -h
//	plot [flags] source [ source ... ]
//		plot draws a cactus plot of all sources, or a scatter plot of
//		exactly two.  With -d it prints per source statistics instead.
//	  -p, --plot-type string   cactus or scatter (default "cactus")
//	  -b, --backend string     pdf, pgf, png, ps, svg, eps, tex, html or utf8 (default "png")
//	      --save-to string     output path (default "plot")
//	  -k, --key string         stat to extract per instance (default "rtime")
//	  -t, --timeout float      timeout in seconds (default 305)
//	  -d, --dry-run            print statistics instead of plotting
//	      --report string      table, yaml or json (default "table")
//
//	⎣ ⇨ benchplot list -h
//	list [flags] source [ source ... ]
//		list prints the kept instances with the value of each source,
//		"?" where a source has none.
//	      --join               only instances common to all sources
//
// Every flag may also be given in the file named by --config or as an
// environment variable BENCHPLOT_<FLAG>, dashes replaced by underscores,
// eg BENCHPLOT_SAVE_TO.  Flags take precedence over the environment,
// which takes precedence over the config file.  Datastore connection
// settings are read from BENCHPLOT_DB_* variables and a .env file.
package main
