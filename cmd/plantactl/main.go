// plantactl operaciones de mantenimiento y consulta sobre el mismo almacén que la API.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
