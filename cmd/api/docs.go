package main

// @title           DívidaZero API
// @version         1.0
// @description     API do caderno digital de vendas e fiado para microcomércio

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
