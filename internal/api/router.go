package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the dashboard API under /api/v1.
func RegisterRoutes(e *gin.Engine, h *Handlers) {
	v1 := e.Group("/api/v1")

	profesores := v1.Group("/profesores")
	{
		profesores.GET("", h.ListProfessors)
		profesores.GET("/reportes.zip", h.ExportAllPDFs)
		profesores.GET("/:documento/promedios", h.GetAverages)
		profesores.GET("/:documento/detalle", h.GetDetail)
		profesores.GET("/:documento/mejoras", h.GetSuggestions)
		profesores.GET("/:documento/reporte.pdf", h.ExportPDF)
	}

	estadisticas := v1.Group("/estadisticas")
	{
		estadisticas.GET("/periodos", h.ListPeriods)
		estadisticas.GET("/actores", h.ListEvaluators)
	}
}
