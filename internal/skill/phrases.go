package skill

// Spoken phrases. The skill speaks French; these texts are part of the user
// contract and must not be reworded casually.
const (
	phraseNotConnected = "Bonjour, vous devez être connecté à spotifaï pour utiliser cette skill. Pour cela, allez dans les paramètres de la skill dans votre application Alexa."
	phraseWelcome      = "Bonjour, je peux lister les appareils connectés ou lancer spotifaï sur un appareil. Que désirez-vous faire ?"
	phraseRepeat       = "Je n'ai pas compris votre demande. Que désirez-vous faire ?"
	phraseError        = "Désolé, une erreur s'est produite pendant l'exécution de votre demande. Pouvez-vous répéter ?"

	// %s is the rendered device list.
	phraseDevicesFound = "J'ai trouvé ces appareils connectés : %s Sur lequel voulez-vous écouter spotifaï ?"

	phrasePlaybackStarted = "Lecture de spotifaï sur %s"
	phrasePlaybackFailed  = "Je ne suis pas parvenue à lancer spotifaï sur %s. Merci d'essayer ultérieurement."
	phraseNumberNotFound  = "Je n'ai pas trouvé d'appareil avec ce numéro. Peut-être devriez-vous demander à connek tifaï la liste des appareils."
	phraseNameNotFound    = "Je n'ai pas trouvé d'appareil %s. Peut-être devriez-vous vérifier le nom de vos appareils avec la liste des appareils connectés."
	phraseNoMatch         = "Je n'ai pas trouvé d'appareil correspondant. Peut-être devriez-vous demander à connek tifaï la liste des appareils."
)
