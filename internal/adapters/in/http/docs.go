// Package http is the REST adapter of the service.
//
// Routes live under /api/v1 and are described by the embedded openapi.yaml,
// served as JSON at /api/v1/openapi.json and through the swagger UI at
// /swagger/index.html. The caller is identified by the X-Actor-ID and
// X-Actor-Role headers. Error kinds map to status codes as follows:
//
//	not found                        404
//	forbidden                        403
//	invalid state or invalid input   400
//	anything else                    500
package http
