// Package pkg provides the core libraries for amida ladder lotteries.
//
// # Overview
//
// Amida draws Amidakuji ("ghost leg") ladders: vertical lines joined by
// random horizontal rungs, pairing each player at the top with an outcome
// at the bottom. The pkg directory is organized into four main areas:
//
//  1. [ladder] - Domain logic (generation, simulation, name handling)
//  2. [render] - Diagram rendering (layout, styles, output sinks)
//  3. [session] - Game storage (memory, file, Redis)
//  4. [manifest] - TOML game configuration files
//
// # Architecture
//
// The typical data flow through amida:
//
//	Game file / request
//	         ↓
//	    [ladder] package (generate rungs, simulate the walk)
//	         ↓
//	    [render/ladderviz] package (geometric layout + styles)
//	         ↓
//	    SVG/PDF/PNG/JSON/DOT output
//
// The [errors] package supplies coded errors shared by every layer, and
// [buildinfo] carries ldflags-injected version information.
package pkg
