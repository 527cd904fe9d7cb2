// token emite un JWT firmado con JWT_SECRET para operar las rutas administrativas
// (alta de assets, aprobación de solicitudes, reportes) desde scripts o Postman.
//
// Uso: go run ./cmd/token -email hr@empresa.com -role hr
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/pkg/config"
	"github.com/jhoicas/AssetVerse-api/pkg/jwt"
)

func main() {
	email := flag.String("email", "", "email del usuario")
	role := flag.String("role", entity.RoleHR, "rol: admin | hr | user")
	userID := flag.String("user", "", "ID del usuario (por defecto uno nuevo)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no definido")
		os.Exit(1)
	}
	switch *role {
	case entity.RoleAdmin, entity.RoleHR, entity.RoleDefault:
	default:
		fmt.Fprintf(os.Stderr, "Rol inválido %q\n", *role)
		os.Exit(1)
	}
	id := *userID
	if id == "" {
		id = entity.NewID()
	}

	token, err := jwt.Generate(cfg.JWT.Secret, id, *email, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
