// Package version - Versionsinformation fuer thorascan
package version

// Version wird beim Release-Build via -ldflags ueberschrieben
var Version string = "0.0.0"
