package portfolio

import "github.com/fernandozarate/portfolio/internal/theme"

var (
	AboutMe = `Desarrollador web full stack de San Juan, Argentina. Construyo productos completos,
	desde la interfaz hasta la base de datos, con foco en plataformas que resuelven problemas concretos
	de comunidades locales: estudiantes universitarios, comercios y desarrolladores de la región.`

	UnexoDescription = `Unexo es la plataforma que conecta a estudiantes de la Universidad Nacional de San Juan,
	permitiéndoles compartir y acceder gratuitamente a recursos académicos. Facilita el aprendizaje colaborativo
	y la organización del estudio, potenciando la experiencia universitaria.`

	NodoDescription = `Nodo es una plataforma de publicidad digital local diseñada para conectar comercios y marcas
	locales con sitios web y aplicaciones de su misma región. El sistema permite a los anunciantes promocionarse en
	medios digitales locales reales, mientras que los desarrolladores pueden monetizar sus proyectos sin depender de
	redes publicitarias globales. Nodo prioriza el contexto local, el contacto directo con los comercios y un modelo
	de monetización justo, incentivando la creación y sostenimiento de un ecosistema web local rentable.`
)

var unexoFeatures = []Feature{
	{
		Value: "auth-roles",
		Title: "Autenticación y Gestión de Roles",
		Text:  "Sistema completo de autenticación con registro, inicio de sesión y recuperación de contraseña. Gestión de roles jerárquicos (usuario, admin y founder) con control de permisos y accesos. Protección de rutas y acciones sensibles mediante autorización basada en roles y manejo seguro de sesiones y tokens.",
	},
	{
		Value: "interaction-content",
		Title: "Interacción y Contenido",
		Text:  "Sistema de contribuciones para la publicación, edición y eliminación de recursos académicos. Interacciones entre usuarios mediante likes, guardado de recursos y comentarios. Sistema de reportes para contenido inapropiado, incorrecto o duplicado, con organización por categorías, materias y etiquetas.",
	},
	{
		Value: "admin-moderation",
		Title: "Administración y Moderación",
		Text:  "Panel de usuario para la gestión de perfil, contribuciones y actividad. Panel administrativo para la revisión, aprobación y moderación de contenido. Gestión de reportes, control de calidad del material publicado, sistema de logs para auditoría y visualización de estadísticas y métricas de uso.",
	},
	{
		Value: "filters-search",
		Title: "Filtros y Búsqueda",
		Text:  "Sistema de búsqueda avanzada con filtros en cascada. Filtros específicos para contribuciones, usuarios, logs del sistema y reportes, permitiendo una navegación optimizada y un descubrimiento eficiente de contenido relevante.",
	},
	{
		Value: "notifications-ads",
		Title: "Notificaciones y Publicidad",
		Text:  "Sistema de notificaciones internas para eventos relevantes dentro de la plataforma. Servicio automático de envío de correos electrónicos para registro, verificación de usuarios, recuperación de contraseña y notificaciones importantes. Gestión de anuncios y espacios publicitarios segmentados con control de visibilidad, duración y estado.",
	},
}

var nodoFeatures = []Feature{
	{
		Value: "advertiser-module",
		Title: "Módulo para Anunciantes",
		Text:  "Panel de gestión orientado a comercios y marcas locales. Permite visualizar en qué sitios web y aplicaciones se están mostrando sus anuncios, junto con métricas clave como impresiones, clics y rendimiento general de las campañas. El módulo prioriza la transparencia y el control, facilitando el seguimiento del impacto real de la publicidad en medios locales.",
	},
	{
		Value: "developer-module",
		Title: "Módulo para Desarrolladores",
		Text:  "Espacio dedicado a desarrolladores y propietarios de sitios web o aplicaciones. Permite visualizar la cantidad de anuncios disponibles, impresiones generadas, ingresos estimados y valor de pago por cada 1000 impresiones (CPM), diferenciados según el formato publicitario utilizado.",
	},
	{
		Value: "ad-integration",
		Title: "Integración de Anuncios mediante Librería",
		Text:  "Los anuncios se integran a los proyectos mediante la instalación de una librería y el uso de componentes específicos. Esta abstracción simplifica la implementación técnica, permite identificar automáticamente el tipo de anuncio renderizado y asegura una integración consistente en distintos entornos web y mobile.",
	},
	{
		Value: "api-endpoints",
		Title: "Endpoints y Claves de Integración",
		Text:  "Sistema de endpoints y claves de acceso para desarrolladores que permite importar anuncios, registrar impresiones y clics, y comunicar eventos relevantes a la plataforma. Este enfoque habilita una integración flexible y escalable, manteniendo control y seguridad en el intercambio de datos.",
	},
	{
		Value: "format-aware-monetization",
		Title: "Monetización Basada en Formatos",
		Text:  "Nodo identifica el formato publicitario que se está mostrando (Half Page, Billboard, banners y formatos mobile) y utiliza esta información para calcular métricas e ingresos de manera diferenciada, incentivando el uso de formatos de mayor valor e impacto.",
	},
}

var defaultProjects = []Project{
	{
		ID:    "unexo",
		Title: "Unexo",
		URL:   "https://www.unexoapp.com/",
		Media: []Media{
			{Kind: Image, Illustration: theme.Unexo, Alt: "Unexo"},
		},
		Description:    UnexoDescription,
		Technologies:   []string{"TypeScript", "React", "Next.js", "ChakraUI", "Tailwind", "Node.js", "Express", "PostgreSQL", "Prisma"},
		Infrastructure: []string{"Vercel", "Render", "Supabase", "Docker", "Brevo"},
		Features:       unexoFeatures,
		Status: Status{
			Text: "Actualmente en producción silenciosa.\n\nEl lanzamiento oficial es el 9 de febrero de 2026. Puedes visitar la plataforma en [Unexo](https://www.unexoapp.com).",
		},
		Links: []Link{
			{Label: "Código Frontend", Href: "https://github.com/FernandoAvZarate/unexo-showcase-frontend"},
			{Label: "Código Backend", Disabled: true},
			{Label: "Proyecto en Figma", Href: "https://www.figma.com/"},
		},
	},
	{
		ID:    "nodo",
		Title: "Nodo",
		URL:   "/",
		Media: []Media{
			{Kind: Image, Illustration: theme.Nodo, Alt: "Nodo"},
		},
		Description:    NodoDescription,
		Technologies:   []string{"TypeScript", "React", "ChakraUI", "Tailwind", "Node.js", "Express", "PostgreSQL", "Prisma"},
		Infrastructure: []string{"Vercel", "Render", "Supabase", "Docker", "Brevo"},
		Features:       nodoFeatures,
		Status: Status{
			Text: "El proyecto se encuentra actualmente en desarrollo activo.\n\nConcebido como una iniciativa a largo plazo orientada al crecimiento del ecosistema digital local.",
		},
	},
}

var defaultProfile = Profile{
	Name:     "Fernando Aníbal del Valle Zárate",
	Headline: "Desarrollador Web Full Stack",
	Skills:   []string{"JavaScript", "TypeScript", "React", "Next.js", "Node.js (Express & NestJS)", "PostgreSQL", "Prisma ORM"},
	Bio:      AboutMe,
}

var defaultStack = []TechCategory{
	{Label: "Frontend", Items: []string{"JavaScript", "TypeScript", "React", "Next.js", "ChakraUI", "Tailwind"}},
	{Label: "Backend", Items: []string{"Node.js", "Express", "NestJS"}},
	{Label: "Datos", Items: []string{"PostgreSQL", "Prisma ORM"}},
	{Label: "Infraestructura", Items: []string{"Vercel", "Render", "Supabase", "Docker", "Brevo"}},
}

var defaultExperience = []Experience{
	{
		Role:         "Fundador y Desarrollador Full Stack",
		Organization: "Unexo",
		Period:       "2025 - Actualidad",
		Items: []string{
			"Diseño y desarrollo de la plataforma de recursos académicos de la UNSJ",
			"Autenticación con roles jerárquicos, moderación de contenido y panel administrativo",
			"Despliegue en Vercel y Render con base de datos en Supabase",
		},
	},
	{
		Role:         "Desarrollador Full Stack",
		Organization: "Nodo",
		Period:       "2025 - Actualidad",
		Items: []string{
			"Plataforma de publicidad digital local para anunciantes y desarrolladores",
			"Métricas de impresiones, clics e ingresos por formato publicitario",
		},
	},
}

var defaultStudies = []Study{
	{Title: "Estudios universitarios", Institution: "Universidad Nacional de San Juan"},
}

var defaultContacts = []Link{
	{Label: "Github", Href: "https://github.com/FernandoAvZarate"},
	{Label: "Linkedin", Href: "https://www.linkedin.com/in/fernandozaratedev/"},
}

// Default returns the content shown on the page. contactEmail, when set,
// adds a mailto contact link.
func Default(contactEmail string) Content {
	contacts := append([]Link(nil), defaultContacts...)
	if contactEmail != "" {
		contacts = append(contacts, Link{Label: "Email", Href: "mailto:" + contactEmail})
	}
	return Content{
		Profile:    defaultProfile,
		Projects:   defaultProjects,
		Stack:      defaultStack,
		Experience: defaultExperience,
		Studies:    defaultStudies,
		Contacts:   contacts,
	}
}
