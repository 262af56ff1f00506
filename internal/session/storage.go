package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
)

// CredencialStorage persiste el token de sesión y el usuario autenticado.
// Ambos se guardan y se limpian juntos; aún así el Guard tolera encontrar un
// token sin usuario (sesión rota) porque el canal de persistencia no ofrece
// garantías transaccionales.
type CredencialStorage interface {
	// Guardar persiste el token y el usuario.
	Guardar(token string, usuario *dto.UsuarioResponse) error
	// Cargar devuelve lo persistido. Sin sesión previa devuelve ("", nil, nil).
	Cargar() (token string, usuario *dto.UsuarioResponse, err error)
	// Limpiar borra token y usuario.
	Limpiar() error
}

// credencialArchivo es el formato en disco.
type credencialArchivo struct {
	Token   string               `json:"token"`
	Usuario *dto.UsuarioResponse `json:"usuario,omitempty"`
}

// FileStorage implementa CredencialStorage sobre un archivo JSON.
type FileStorage struct {
	path string
}

// NewFileStorage construye el storage sobre la ruta indicada.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Guardar persiste token y usuario en el archivo.
func (s *FileStorage) Guardar(token string, usuario *dto.UsuarioResponse) error {
	data, err := json.Marshal(credencialArchivo{Token: token, Usuario: usuario})
	if err != nil {
		return fmt.Errorf("session: serializar credenciales: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("session: guardar credenciales: %w", err)
	}
	return nil
}

// Cargar lee el archivo. Si no existe no hay sesión previa: ("", nil, nil).
func (s *FileStorage) Cargar() (string, *dto.UsuarioResponse, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("session: leer credenciales: %w", err)
	}
	var c credencialArchivo
	if err := json.Unmarshal(data, &c); err != nil {
		return "", nil, fmt.Errorf("session: credenciales corruptas: %w", err)
	}
	return c.Token, c.Usuario, nil
}

// Limpiar borra el archivo. Que no exista no es un error.
func (s *FileStorage) Limpiar() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: limpiar credenciales: %w", err)
	}
	return nil
}
