//go:build windows

package path

const defaultSep = `\`
