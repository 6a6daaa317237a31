// Package textutil holds small string helpers shared by the driver and the
// CLI: screenshot file name sanitizing and banner titles.
package textutil
