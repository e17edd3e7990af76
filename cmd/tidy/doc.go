// Command tidy organizes a directory's files into category subfolders by
// extension and writes a plain-text summary report.
package main
