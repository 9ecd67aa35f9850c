// Package docs expone la especificación OpenAPI embebida en el binario. Al ir
// embebida, el middleware de Swagger no depende de la presencia del archivo en
// el directorio de trabajo al arrancar.
package docs

import _ "embed"

// Spec especificación OpenAPI (swagger 2.0) de la API.
//
//go:embed swagger.json
var Spec []byte
