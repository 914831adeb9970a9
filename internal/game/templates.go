// internal/game/templates.go
package game

import "github.com/fridaybar/backend/internal/models"

// defaultTemplates is the full seeded catalog: English and Danish variants of
// every prompt, spanning the three intensity tiers. Placeholder tokens
// ({player}, {player1}, {player2}, {player3}) are substituted per session by
// the resolver. Immutable after seeding.
var defaultTemplates = buildTemplates()

func tmpl(typ models.ChallengeType, intensity models.Intensity, category string, minPlayers int, en, da string) models.ChallengeTemplate {
	return models.ChallengeTemplate{
		Type:       typ,
		Intensity:  intensity,
		Category:   category,
		MinPlayers: minPlayers,
		Template:   en,
		TemplateDa: da,
	}
}

func buildTemplates() []models.ChallengeTemplate {
	return []models.ChallengeTemplate{
		// ---- mild ----
		tmpl(models.ChallengeGeneral, models.IntensityMild, "drinking", 1,
			"Everyone takes a sip!",
			"Alle tager en tår!"),
		tmpl(models.ChallengeGeneral, models.IntensityMild, "drinking", 1,
			"Anyone wearing something black takes a sip.",
			"Alle med noget sort tøj på tager en tår."),
		tmpl(models.ChallengeGeneral, models.IntensityMild, "drinking", 1,
			"Last person to raise their hand takes a sip.",
			"Den sidste, der rækker hånden op, tager en tår."),
		tmpl(models.ChallengeGeneral, models.IntensityMild, "drinking", 1,
			"Everyone with their phone on the table takes a sip.",
			"Alle med telefonen på bordet tager en tår."),
		tmpl(models.ChallengeGeneral, models.IntensityMild, "truth", 1,
			"Everyone says their guilty-pleasure song out loud.",
			"Alle siger deres guilty pleasure-sang højt."),
		tmpl(models.ChallengeGeneral, models.IntensityMild, "dare", 1,
			"Everyone swaps seats with the person on their left.",
			"Alle bytter plads med personen til venstre."),
		tmpl(models.ChallengePlayer, models.IntensityMild, "drinking", 1,
			"{player} takes a sip.",
			"{player} tager en tår."),
		tmpl(models.ChallengePlayer, models.IntensityMild, "drinking", 1,
			"{player} hands out two sips.",
			"{player} uddeler to tåre."),
		tmpl(models.ChallengePlayer, models.IntensityMild, "dare", 1,
			"{player} must speak in a whisper until the next challenge.",
			"{player} skal hviske indtil næste udfordring."),
		tmpl(models.ChallengePlayer, models.IntensityMild, "dare", 1,
			"{player} does their best impression of a celebrity until someone guesses who.",
			"{player} imiterer en kendis, indtil nogen gætter hvem."),
		tmpl(models.ChallengePlayer, models.IntensityMild, "truth", 1,
			"{player} tells the group their most played song this year.",
			"{player} fortæller gruppen deres mest spillede sang i år."),
		tmpl(models.ChallengePlayer, models.IntensityMild, "truth", 1,
			"{player} reveals the last thing they googled.",
			"{player} afslører det sidste, de googlede."),
		tmpl(models.ChallengePlayer, models.IntensityMild, "embarrassing", 1,
			"{player} shows the group the oldest photo on their phone.",
			"{player} viser gruppen det ældste billede på deres telefon."),
		tmpl(models.ChallengePlayer, models.IntensityMild, "embarrassing", 1,
			"{player} sings the chorus of the last song they listened to.",
			"{player} synger omkvædet af den sidste sang, de hørte."),
		tmpl(models.ChallengeVersus, models.IntensityMild, "drinking", 2,
			"{player1} and {player2} toast and take a sip together.",
			"{player1} og {player2} skåler og tager en tår sammen."),
		tmpl(models.ChallengeVersus, models.IntensityMild, "drinking", 2,
			"{player1} and {player2} play rock-paper-scissors. Loser takes a sip.",
			"{player1} og {player2} spiller sten-saks-papir. Taberen tager en tår."),
		tmpl(models.ChallengeVersus, models.IntensityMild, "dare", 2,
			"{player1} and {player2} hold a staring contest. Loser takes a sip.",
			"{player1} og {player2} tager en stirrekonkurrence. Taberen tager en tår."),
		tmpl(models.ChallengeVersus, models.IntensityMild, "truth", 2,
			"{player1} guesses {player2}'s favorite drink. Wrong guess costs a sip.",
			"{player1} gætter {player2}s yndlingsdrink. Forkert gæt koster en tår."),
		tmpl(models.ChallengeGroup, models.IntensityMild, "drinking", 1,
			"Everyone younger than {player} takes a sip.",
			"Alle yngre end {player} tager en tår."),
		tmpl(models.ChallengeGroup, models.IntensityMild, "drinking", 1,
			"The group counts to 20, one number per person. Mess up and everyone drinks.",
			"Gruppen tæller til 20, ét tal ad gangen. Fejl, og alle drikker."),
		tmpl(models.ChallengeGroup, models.IntensityMild, "dare", 1,
			"The whole group does a wave, starting with {player}.",
			"Hele gruppen laver en bølge, startende med {player}."),
		tmpl(models.ChallengeGroup, models.IntensityMild, "drinking", 3,
			"{player1}, {player2} and {player3} toast in three different languages, then sip.",
			"{player1}, {player2} og {player3} skåler på tre forskellige sprog og tager en tår."),
		tmpl(models.ChallengeGroup, models.IntensityMild, "dare", 3,
			"{player1}, {player2} and {player3} build a human pyramid. Or at least try.",
			"{player1}, {player2} og {player3} bygger en menneskepyramide. Eller prøver."),
		tmpl(models.ChallengeGroup, models.IntensityMild, "truth", 4,
			"Everyone points at who they think is most likely to fall asleep first tonight.",
			"Alle peger på den, de tror, falder i søvn først i aften."),

		// ---- medium ----
		tmpl(models.ChallengeGeneral, models.IntensityMedium, "drinking", 1,
			"Everyone takes two sips!",
			"Alle tager to tåre!"),
		tmpl(models.ChallengeGeneral, models.IntensityMedium, "drinking", 1,
			"Waterfall! Everyone drinks until the person to their right stops.",
			"Vandfald! Alle drikker, indtil personen til højre stopper."),
		tmpl(models.ChallengeGeneral, models.IntensityMedium, "drinking", 1,
			"Anyone who has ever skipped a Friday lecture takes a sip.",
			"Alle, der har pjækket fra en fredagsforelæsning, tager en tår."),
		tmpl(models.ChallengeGeneral, models.IntensityMedium, "truth", 1,
			"Everyone reveals their most embarrassing nickname ever.",
			"Alle afslører deres mest pinlige kælenavn nogensinde."),
		tmpl(models.ChallengeGeneral, models.IntensityMedium, "dare", 1,
			"Nobody may say the word 'drink' until the next challenge. Offenders sip.",
			"Ingen må sige ordet 'drikke' før næste udfordring. Syndere tager en tår."),
		tmpl(models.ChallengeGeneral, models.IntensityMedium, "embarrassing", 1,
			"Everyone shows the last photo in their camera roll.",
			"Alle viser det sidste billede i deres kamerarulle."),
		tmpl(models.ChallengePlayer, models.IntensityMedium, "drinking", 1,
			"{player} finishes half of their drink.",
			"{player} drikker halvdelen af deres drink."),
		tmpl(models.ChallengePlayer, models.IntensityMedium, "drinking", 1,
			"{player} picks someone to finish their drink with them.",
			"{player} vælger en til at tømme deres drink sammen med dem."),
		tmpl(models.ChallengePlayer, models.IntensityMedium, "dare", 1,
			"{player} lets the group write a status update on their social media. Kidding. Unless?",
			"{player} lader gruppen skrive en opdatering på deres sociale medier. Det var for sjov. Eller?"),
		tmpl(models.ChallengePlayer, models.IntensityMedium, "dare", 1,
			"{player} talks in an accent chosen by the group until the next challenge.",
			"{player} taler med en accent valgt af gruppen indtil næste udfordring."),
		tmpl(models.ChallengePlayer, models.IntensityMedium, "truth", 1,
			"{player} admits the most childish thing they still do.",
			"{player} indrømmer den mest barnlige ting, de stadig gør."),
		tmpl(models.ChallengePlayer, models.IntensityMedium, "truth", 1,
			"{player} tells the group about their worst date ever.",
			"{player} fortæller gruppen om deres værste date nogensinde."),
		tmpl(models.ChallengePlayer, models.IntensityMedium, "embarrassing", 1,
			"{player} reads their three most recent emojis and explains them.",
			"{player} viser deres tre senest brugte emojis og forklarer dem."),
		tmpl(models.ChallengePlayer, models.IntensityMedium, "embarrassing", 1,
			"{player} dances for 15 seconds without music.",
			"{player} danser i 15 sekunder uden musik."),
		tmpl(models.ChallengeVersus, models.IntensityMedium, "drinking", 2,
			"{player1} and {player2} race to finish their drinks. Loser grabs the next round.",
			"{player1} og {player2} kapdrikker. Taberen henter næste runde."),
		tmpl(models.ChallengeVersus, models.IntensityMedium, "dare", 2,
			"{player1} and {player2} swap an item of clothing until the next challenge.",
			"{player1} og {player2} bytter en beklædningsgenstand indtil næste udfordring."),
		tmpl(models.ChallengeVersus, models.IntensityMedium, "truth", 2,
			"{player1} asks {player2} any question. Refusing to answer costs three sips.",
			"{player1} stiller {player2} et hvilket som helst spørgsmål. At nægte koster tre tåre."),
		tmpl(models.ChallengeVersus, models.IntensityMedium, "embarrassing", 2,
			"{player1} does their best impression of {player2}. {player2} drinks if the group approves.",
			"{player1} imiterer {player2}. {player2} drikker, hvis gruppen godkender."),
		tmpl(models.ChallengeGroup, models.IntensityMedium, "drinking", 1,
			"Categories! {player} names a category; go around until someone repeats or blanks. They drink.",
			"Kategorier! {player} vælger en kategori; fortsæt rundt, til nogen gentager eller går i stå. De drikker."),
		tmpl(models.ChallengeGroup, models.IntensityMedium, "drinking", 1,
			"Never have I ever, started by {player}. Three rounds, you know the rules.",
			"Jeg har aldrig, startet af {player}. Tre runder, I kender reglerne."),
		tmpl(models.ChallengeGroup, models.IntensityMedium, "dare", 1,
			"Everyone must address {player} as 'boss' until the next challenge. Offenders sip.",
			"Alle skal kalde {player} for 'chef' indtil næste udfordring. Syndere tager en tår."),
		tmpl(models.ChallengeGroup, models.IntensityMedium, "drinking", 3,
			"{player1}, {player2} and {player3} drink while the rest applaud.",
			"{player1}, {player2} og {player3} drikker, mens resten klapper."),
		tmpl(models.ChallengeGroup, models.IntensityMedium, "dare", 3,
			"{player1}, {player2} and {player3} perform a 10-second boyband pose. Hold it.",
			"{player1}, {player2} og {player3} laver en 10-sekunders boyband-positur. Hold den."),
		tmpl(models.ChallengeGroup, models.IntensityMedium, "truth", 4,
			"Everyone votes who is most likely to become famous. The winner drinks.",
			"Alle stemmer på den, der mest sandsynligt bliver berømt. Vinderen drikker."),

		// ---- spicy ----
		tmpl(models.ChallengeGeneral, models.IntensitySpicy, "drinking", 1,
			"Bottoms up! Everyone finishes their drink.",
			"Bund! Alle tømmer deres drink."),
		tmpl(models.ChallengeGeneral, models.IntensitySpicy, "drinking", 1,
			"Anyone who has texted an ex this year finishes their drink.",
			"Alle, der har skrevet til en eks i år, tømmer deres drink."),
		tmpl(models.ChallengeGeneral, models.IntensitySpicy, "truth", 1,
			"Everyone confesses the worst lie they ever told a partner.",
			"Alle tilstår den værste løgn, de har fortalt en partner."),
		tmpl(models.ChallengeGeneral, models.IntensitySpicy, "truth", 1,
			"Everyone names their most regrettable kiss. Vague answers cost a drink.",
			"Alle nævner deres mest fortrudte kys. Vage svar koster en drink."),
		tmpl(models.ChallengeGeneral, models.IntensitySpicy, "dare", 1,
			"Phones in the middle. First to grab theirs before the next challenge finishes their drink.",
			"Telefoner i midten. Den første, der tager sin før næste udfordring, tømmer sin drink."),
		tmpl(models.ChallengeGeneral, models.IntensitySpicy, "embarrassing", 1,
			"Everyone shows their most embarrassing search history entry from this week.",
			"Alle viser deres mest pinlige søgehistorik fra denne uge."),
		tmpl(models.ChallengePlayer, models.IntensitySpicy, "drinking", 1,
			"{player} finishes their drink.",
			"{player} tømmer deres drink."),
		tmpl(models.ChallengePlayer, models.IntensitySpicy, "drinking", 1,
			"{player} mixes a sip from three different drinks on the table and downs it.",
			"{player} blander en tår fra tre forskellige drinks på bordet og drikker den."),
		tmpl(models.ChallengePlayer, models.IntensitySpicy, "dare", 1,
			"{player} calls the third contact in their phone and sings happy birthday.",
			"{player} ringer til den tredje kontakt i deres telefon og synger fødselsdagssang."),
		tmpl(models.ChallengePlayer, models.IntensitySpicy, "dare", 1,
			"{player} lets the group send one text from their phone.",
			"{player} lader gruppen sende én besked fra deres telefon."),
		tmpl(models.ChallengePlayer, models.IntensitySpicy, "truth", 1,
			"{player} reveals their body count or finishes their drink.",
			"{player} afslører deres body count eller tømmer deres drink."),
		tmpl(models.ChallengePlayer, models.IntensitySpicy, "truth", 1,
			"{player} tells the group who in the room they'd date. No passing.",
			"{player} fortæller gruppen, hvem i lokalet de ville date. Ingen pas."),
		tmpl(models.ChallengePlayer, models.IntensitySpicy, "embarrassing", 1,
			"{player} reads their last three sent messages out loud.",
			"{player} læser deres tre sidst sendte beskeder højt."),
		tmpl(models.ChallengePlayer, models.IntensitySpicy, "embarrassing", 1,
			"{player} shows the group their screen time report.",
			"{player} viser gruppen deres skærmtidsrapport."),
		tmpl(models.ChallengeVersus, models.IntensitySpicy, "drinking", 2,
			"{player1} and {player2} arm wrestle. Loser finishes their drink.",
			"{player1} og {player2} lægger arm. Taberen tømmer sin drink."),
		tmpl(models.ChallengeVersus, models.IntensitySpicy, "truth", 2,
			"{player1} and {player2} reveal what they first thought of each other.",
			"{player1} og {player2} afslører, hvad de først tænkte om hinanden."),
		tmpl(models.ChallengeVersus, models.IntensitySpicy, "dare", 2,
			"{player1} serenades {player2} on one knee. {player2} rates it; under 7 and {player1} drinks.",
			"{player1} serenaderer {player2} på knæ. {player2} giver karakter; under 7 og {player1} drikker."),
		tmpl(models.ChallengeVersus, models.IntensitySpicy, "embarrassing", 2,
			"{player1} and {player2} exchange phones and read one chat of the other's choosing.",
			"{player1} og {player2} bytter telefoner og læser én chat efter den andens valg."),
		tmpl(models.ChallengeGroup, models.IntensitySpicy, "drinking", 1,
			"Everyone {player} points at during the next 10 seconds finishes their drink.",
			"Alle, {player} peger på i de næste 10 sekunder, tømmer deres drink."),
		tmpl(models.ChallengeGroup, models.IntensitySpicy, "drinking", 1,
			"Truth or drink, hot seat: the group asks {player} three questions.",
			"Sandhed eller drik, den varme stol: gruppen stiller {player} tre spørgsmål."),
		tmpl(models.ChallengeGroup, models.IntensitySpicy, "dare", 1,
			"The group picks a dare for {player}. Refusing costs a full drink.",
			"Gruppen vælger en udfordring til {player}. At nægte koster en hel drink."),
		tmpl(models.ChallengeGroup, models.IntensitySpicy, "drinking", 3,
			"{player1}, {player2} and {player3} link arms and drink together.",
			"{player1}, {player2} og {player3} tager armkrog og drikker sammen."),
		tmpl(models.ChallengeGroup, models.IntensitySpicy, "embarrassing", 3,
			"{player1}, {player2} and {player3} recreate a famous album cover. The group judges.",
			"{player1}, {player2} og {player3} genskaber et berømt albumcover. Gruppen dømmer."),
		tmpl(models.ChallengeGroup, models.IntensitySpicy, "truth", 4,
			"Everyone anonymously votes who flirts the most. The winner finishes their drink.",
			"Alle stemmer anonymt på den, der flirter mest. Vinderen tømmer sin drink."),
	}
}
