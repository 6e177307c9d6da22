package summary

const (
	labelPatient          = "Patient"
	labelBirthDate        = "Date de naissance"
	labelSex              = "Sexe"
	labelBloodGroup       = "Groupe sanguin"
	labelNationalID       = "N° Sécurité sociale"
	labelAddress          = "Adresse"
	labelContact          = "Coordonnées"
	labelEmergencyContact = "Personne à contacter"
	labelPersonalHistory  = "Antécédents personnels"
	labelFamilyHistory    = "Antécédents familiaux"
	labelNotes            = "Comptes-rendus"
	labelPrescriptions    = "Ordonnances"
	labelAge              = "Âge"

	dash        = "—"
	notProvided = "non renseigné"
	none        = "aucun"
)
