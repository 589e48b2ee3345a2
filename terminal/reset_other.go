//go:build !unix

package terminal

func restoreCookedMode() {}
