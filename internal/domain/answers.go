package domain

import (
	"fmt"
	"strings"
)

// Pre-authored space biology answers served when the live generation
// endpoint is unavailable or no API credential is configured. Selection
// is deterministic so the offline experience is stable and testable.

// TopicAnswer struct - One keyword group and its pre-authored answer
type TopicAnswer struct {
	Keywords []string
	Text     string
}

// topicAnswers is evaluated in order; the first group with a keyword
// contained in the question wins, so earlier topics take priority when
// a question mentions several.
var topicAnswers = []TopicAnswer{
	{Keywords: []string{"bone", "osteo"}, Text: boneLossAnswer},
	{Keywords: []string{"muscle", "atrophy"}, Text: muscleAnswer},
	{Keywords: []string{"radiation", "cosmic"}, Text: radiationAnswer},
	{Keywords: []string{"plant", "crop", "grow"}, Text: plantAnswer},
	{Keywords: []string{"immune", "infection"}, Text: immuneAnswer},
	{Keywords: []string{"heart", "cardiovascular", "blood"}, Text: cardioAnswer},
}

// SelectAnswer maps a question onto one of the pre-authored answers.
// Pure and deterministic: the same message and search type always yield
// the same text. Matching is case-insensitive substring containment
// against the message, evaluated in topicAnswers priority order. Web
// mode never reaches the keyword groups.
func SelectAnswer(message string, searchType SearchType) string {
	if searchType == SearchTypeWeb {
		return WebSearchNotice(message)
	}
	lower := strings.ToLower(message)
	for _, answer := range topicAnswers {
		for _, keyword := range answer.Keywords {
			if strings.Contains(lower, keyword) {
				return answer.Text
			}
		}
	}
	return generalAnswer
}

// WebSearchNotice explains that live web search is unavailable. The
// original question is echoed back verbatim; escaping it against the
// rendering layer's markup is the rendering client's concern, not ours.
func WebSearchNotice(message string) string {
	return fmt.Sprintf(webSearchNoticeFormat, message)
}

const webSearchNoticeFormat = `**Web Search Unavailable**

Live web search needs an active connection to the generation service, which is not configured right now. I could not search the web for:

"%s"

I can still help from the onboard space biology knowledge base. Try asking about bone loss, muscle atrophy, radiation exposure, plant growth, immune changes, or cardiovascular adaptation in spaceflight.`

const boneLossAnswer = `**Bone Loss in Microgravity**

Astronauts lose bone mineral density at a rate of roughly 1% to 1.5% per month in weight-bearing regions such as the hips, spine, and legs. Without gravity to load the skeleton, bone remodeling falls out of balance: osteoclasts keep resorbing bone while osteoblast activity slows, so density drains away much faster than in age-related osteoporosis on Earth.

Key findings from spaceflight research:

- **Site specificity**: the proximal femur and lumbar spine lose the most, while the skull is largely spared and can even gain density as fluids shift headward.
- **Slow recovery**: after six-month missions, recovery of lost density takes years, and trabecular microarchitecture may never fully return to preflight structure.
- **Countermeasures**: daily resistive exercise on devices like ARED, adequate calcium and vitamin D, and bisphosphonate trials have reduced but not eliminated the loss.
- **Biomarkers**: urinary calcium and collagen crosslinks rise within days of reaching orbit, making them useful early indicators in rodent and human studies.

Understanding this process matters beyond spaceflight. The accelerated remodeling seen in orbit is a compressed model of terrestrial osteoporosis, and countermeasures validated on the ISS inform treatments for immobilized and elderly patients on Earth.`

const muscleAnswer = `**Muscle Atrophy in Spaceflight**

Skeletal muscle begins to waste within days of entering microgravity. Postural muscles that constantly fight gravity on Earth, such as the soleus, calf complex, and spinal extensors, are hit hardest: crew on long missions can lose up to 20% of muscle mass and a larger fraction of peak power despite in-flight exercise.

What the research shows:

- **Fiber-type shift**: slow-twitch endurance fibers convert toward fast-twitch, fatigue-prone types, changing how muscles burn fuel and tire.
- **Protein balance**: synthesis drops while breakdown pathways such as the ubiquitin-proteasome system stay active, tipping net protein balance negative.
- **Rodent models**: hindlimb-unloading studies reproduce the flight phenotype and let researchers test drugs and loading regimens on the ground.
- **Countermeasures**: high-load resistive exercise, treadmill running with bungee loading, and dietary protein timing blunt but do not fully prevent the loss.

Muscle findings from orbit map directly onto bed-rest patients, sarcopenia of aging, and intensive-care deconditioning, which is why spaceflight muscle physiology remains one of the most clinically translatable areas of space biology.`

const radiationAnswer = `**Space Radiation Biology**

Beyond the protection of Earth's magnetosphere, crews are exposed to galactic cosmic rays and solar particle events that are qualitatively different from radiation on Earth. Heavy charged particles (HZE ions) deposit dense ionization tracks through tissue, producing clustered DNA damage that cells repair poorly compared with the sparse damage from X-rays.

Major research threads:

- **DNA damage and repair**: double-strand breaks from HZE tracks are frequently misrepaired, raising chromosomal aberration rates measurable in astronaut lymphocytes for years after flight.
- **Cancer risk**: animal studies show heavier particles are more effective per unit dose at inducing tumors, which drives NASA's permissible exposure limits for career astronauts.
- **Central nervous system**: rodents exposed to simulated cosmic rays show deficits in memory and executive function at doses relevant to a Mars transit.
- **Shielding limits**: aluminum hulls fragment heavy ions into secondary particles, so materials rich in hydrogen, and even water and food stores, are studied as smarter shielding.

Ground-based analogs such as the NASA Space Radiation Laboratory at Brookhaven let biologists expose cells, tissues, and animals to accelerator-generated ion beams without leaving Earth.`

const plantAnswer = `**Growing Plants in Space**

Plants are central to long-duration exploration: they regenerate oxygen, recycle water, and supply fresh food. But every stage of plant life changes without gravity. Roots no longer have "down" to follow, water forms clinging films instead of draining, and gas exchange around leaves stagnates without convection.

Highlights from orbital plant research:

- **Tropisms**: in microgravity, roots still skew and wave along surfaces, showing that touch and moisture gradients can substitute for gravity in guiding growth.
- **Veggie and APH**: the ISS Veggie facility has grown lettuce, radishes, and chile peppers to harvest, while the Advanced Plant Habitat provides closed-loop environmental control for experiments from seed to seed.
- **Gene expression**: spaceflight alters expression of cell-wall, defense, and oxidative-stress genes in Arabidopsis, the workhorse model organism of space botany.
- **Watering is the hard part**: capillary behavior dominates in orbit, so root-zone media and passive wicking systems matter as much as light recipes.

Completing full seed-to-seed life cycles in orbit demonstrated that plants can reproduce off Earth, a prerequisite for any sustainable crop system on the Moon or Mars.`

const immuneAnswer = `**Immune System Changes in Space**

Spaceflight dysregulates the immune system rather than simply weakening it. Some responses are blunted while inflammatory signaling is elevated, and the combination leaves crews more susceptible to latent virus reactivation and hypersensitivity even on missions of a few weeks.

What studies have found:

- **T-cell function**: activation and proliferation are reduced in flight and in microgravity cell culture, with altered cytokine production profiles.
- **Latent viruses**: herpesviruses such as Epstein-Barr, varicella-zoster, and cytomegalovirus reactivate and shed in saliva and urine during missions, a sensitive marker of immune stress.
- **Stress hormones**: elevated cortisol and catecholamines from launch, workload, and disrupted sleep contribute alongside microgravity itself.
- **Microbes change too**: some bacteria grow more virulent in spaceflight culture, so the host-pathogen balance shifts from both directions at once.

Because the pattern resembles immune aging, spaceflight serves as an accelerated model for immunosenescence, and countermeasures such as nutrition, exercise, and antiviral prophylaxis are studied for both astronauts and vulnerable populations on Earth.`

const cardioAnswer = `**Cardiovascular Adaptation to Microgravity**

Without gravity pulling blood toward the feet, roughly two liters of fluid shift toward the head within hours of reaching orbit. The heart and vessels adapt quickly to this new equilibrium, and those adaptations become liabilities the moment crews return to a gravity field.

Core findings:

- **Fluid shift and remodeling**: plasma volume drops about 10-15% in the first days; over months the heart becomes more spherical and can lose mass like any unloaded muscle.
- **Orthostatic intolerance**: after landing, many astronauts cannot stand for ten minutes without dizziness because baroreflexes and vessel tone have deconditioned; fluid loading and compression garments help.
- **Vision and pressure**: the headward shift is implicated in SANS, the spaceflight-associated neuro-ocular syndrome of optic disc edema and globe flattening seen on long missions.
- **Vascular stiffening**: carotid artery stiffness increases during six-month flights by an amount comparable to years of aging, though much of it reverses after return.

Lower-body negative pressure, aerobic and resistive exercise, and fluid-loading protocols are the main countermeasures, and tight ultrasound monitoring on the ISS has made the cardiovascular system one of the best-instrumented in space medicine.`

const generalAnswer = `**Space Biology Research Assistant**

I can help you explore how living systems respond to spaceflight. My knowledge base covers the major threads of NASA-sponsored space biology research, including:

- **Human physiology**: bone density loss, muscle atrophy, cardiovascular deconditioning, immune dysregulation, and sensorimotor adaptation in microgravity.
- **Radiation biology**: effects of galactic cosmic rays and solar particles on DNA, tissues, and cancer risk, plus shielding strategies.
- **Plants and food production**: growing crops in orbit, root behavior without gravity, and closed-loop life support.
- **Model organisms**: what rodents, fruit flies, C. elegans, and microbes reveal about adaptation to the space environment.

Ask me something specific, for example "What happens to bones in microgravity?" or "Can plants grow in space?", and I will summarize what the research shows. Set the search mode to web if you want me to look for recent publications instead.`
