package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	s.echo.GET("/captchaImage", s.captchaImage)
	s.echo.POST("/login", s.login)

	if s.config != nil && s.config.CacheMonitor && s.monitorSvc != nil {
		monitor := s.echo.Group("/monitor/cache")
		monitor.GET("/keys", s.listCacheKeys)
		monitor.GET("/value", s.getCacheValue)
		monitor.DELETE("/key", s.deleteCacheKey)
		monitor.DELETE("/clear", s.clearCache)
	}
}
