package branding

import "github.com/okian/fiesta/internal/domain/model"

// GameInfo is the catalog metadata the hub lists per game.
type GameInfo struct {
	ID          model.GameID `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Players     string       `json:"players"`
	Duration    string       `json:"duration"`
}

// Catalog returns the hub's game catalog in display order.
func Catalog() []GameInfo {
	return []GameInfo{
		{ID: model.GameTrivia, Name: "Trivia Challenge", Description: "Pon a prueba tus conocimientos", Players: "2-8 jugadores", Duration: "15-30 min"},
		{ID: model.GameMemory, Name: "Desafío de Memoria", Description: "Encuentra las parejas y ejercita tu mente", Players: "1-4 jugadores", Duration: "10-20 min"},
		{ID: model.GameWord, Name: "Maestro de Palabras", Description: "Adivina palabras y compite con amigos", Players: "2-6 jugadores", Duration: "20-40 min"},
		{ID: model.GameReaction, Name: "Tiempo de Reacción", Description: "¡Compite con tus amigos y gana recompensas!", Players: "2-6 jugadores", Duration: "15-30 min"},
		{ID: model.GameSimon, Name: "Simón Dice", Description: "Memoriza y repite la secuencia de colores", Players: "2-6 jugadores", Duration: "20-40 min"},
		{ID: model.GamePacman, Name: "Pac-Man", Description: "El clásico juego de comecocos", Players: "2-6 jugadores", Duration: "20-40 min"},
		{ID: model.GameTetris, Name: "Tetris", Description: "Juega contra el tiempo y gana puntos", Players: "2-6 jugadores", Duration: "20-40 min"},
		{ID: model.GameGiftWheel, Name: "Rueda de Regalos", Description: "¡Gira la rueda y gana premios!", Players: "2-6 jugadores", Duration: "20-40 min"},
	}
}

// palettes maps a palette key to its color variants.
var palettes = map[string][]string{
	"red":    {"#ff004c", "#ff3366", "#ff6600", "#ff0000"},
	"blue":   {"#007bff", "#00aaff", "#0055ff", "#66ccff"},
	"green":  {"#00ff99", "#00cc66", "#00ffaa", "#00ffcc"},
	"yellow": {"#ffff00", "#ffcc00", "#ffaa00", "#fff200"},
	"purple": {"#9900ff", "#cc33ff", "#6600ff", "#9933ff"},
}

// Default returns the generic (unbranded) configuration used when no
// branding file is provided.
func Default() Branding {
	return Branding{
		CompanyName: "Fiesta",
		BrandColor:  "#ff004c",
		LogoURL:     "/logo.png",
		Motive:      "Juegos para compartir en equipo",
		PaletteKey:  "red",
		TriviaQuestions: []TriviaQuestion{
			{Question: "¿Cuál es el país más grande del mundo en superficie?", Options: []string{"Canadá", "Rusia", "China", "Estados Unidos"}, Correct: 1},
			{Question: "¿En qué continente se encuentra Egipto?", Options: []string{"Asia", "África", "Europa", "Oceanía"}, Correct: 1},
			{Question: "¿Cuál es el océano más grande del planeta?", Options: []string{"Atlántico", "Índico", "Pacífico", "Ártico"}, Correct: 2},
			{Question: "¿Qué planeta es conocido como el planeta rojo?", Options: []string{"Venus", "Marte", "Júpiter", "Saturno"}, Correct: 1},
			{Question: "¿Quién pintó la Mona Lisa?", Options: []string{"Leonardo da Vinci", "Pablo Picasso", "Vincent van Gogh", "Miguel Ángel"}, Correct: 0},
			{Question: "¿En qué año llegó el ser humano a la Luna?", Options: []string{"1965", "1969", "1972", "1975"}, Correct: 1},
			{Question: "¿Cuál es el idioma más hablado del mundo?", Options: []string{"Inglés", "Mandarín", "Español", "Hindi"}, Correct: 1},
			{Question: "¿Cuál es el río más largo del mundo?", Options: []string{"Amazonas", "Nilo", "Yangtsé", "Misisipi"}, Correct: 0},
			{Question: "¿Qué instrumento musical tiene teclas blancas y negras?", Options: []string{"Violín", "Guitarra", "Piano", "Arpa"}, Correct: 2},
			{Question: "¿Cuál es el metal más utilizado en cables eléctricos?", Options: []string{"Hierro", "Aluminio", "Cobre", "Plata"}, Correct: 2},
		},
		WordCategories: map[string][]string{
			"Países":       {"ARGENTINA", "BRASIL", "MEXICO", "COLOMBIA", "ITALIA", "ALEMANIA", "CANADA", "CHILE"},
			"Capitales":    {"PARIS", "LONDRES", "TOKIO", "BERLIN", "MADRID", "ROMA", "OTTAWA", "LIMA"},
			"Animales":     {"LEON", "TIGRE", "ELEFANTE", "DELFIN", "PINGUINO", "CONEJO", "CABALLO", "OSO"},
			"Deportes":     {"FUTBOL", "TENIS", "PADEL", "NATACION", "CICLISMO", "BOXEO", "VOLEY", "RUGBY"},
			"Comidas":      {"PIZZA", "PASTA", "EMPANADA", "HAMBURGUESA", "HELADO", "ENSALADA", "SUSHI"},
			"Instrumentos": {"PIANO", "GUITARRA", "VIOLIN", "BATERIA", "FLAUTA", "TROMPETA", "BAJO"},
		},
	}
}
