package renderer

// Built-in GLSL programs. The lit program is used by models loaded with
// shader 0; the flat program draws every 2D shape. Both target the 4.1
// core profile.

const litVertexSrc = `
#version 410 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 fragPos;
out vec3 fragNormal;
out vec2 fragUV;

void main() {
    vec4 world = model * vec4(inPosition, 1.0);
    fragPos = world.xyz;
    fragNormal = mat3(transpose(inverse(model))) * inNormal;
    fragUV = inUV;
    gl_Position = projection * view * world;
}
`

const litFragmentSrc = `
#version 410 core

#define DIRECT_LIGHTS 8
#define POINT_LIGHTS  8
#define FLASH_LIGHTS  2

struct Material {
    vec3 color;
};

struct DirectLight {
    vec3 direction;
    vec3 color;
};

struct PointLight {
    vec3 position;
    vec3 color;
};

struct FlashLight {
    vec3 position;
    vec3 direction;
    vec3 color;
    float angle;
    float cutoff;
};

in vec3 fragPos;
in vec3 fragNormal;
in vec2 fragUV;

uniform Material material;
uniform sampler2D main_texture;
uniform vec3 cameraPos;
uniform DirectLight directLights[DIRECT_LIGHTS];
uniform PointLight pointLights[POINT_LIGHTS];
uniform FlashLight flashLights[FLASH_LIGHTS];

out vec4 outColor;

const float ambient = 0.08;
const float shininess = 32.0;

// toLight points from the surface towards the light.
vec3 phong(vec3 n, vec3 v, vec3 toLight, vec3 color) {
    float diff = max(dot(n, toLight), 0.0);
    float spec = pow(max(dot(n, normalize(toLight + v)), 0.0), shininess);
    return color * (diff + 0.5 * spec);
}

void main() {
    vec3 n = normalize(fragNormal);
    vec3 v = normalize(cameraPos - fragPos);
    vec3 light = vec3(ambient);

    for (int i = 0; i < DIRECT_LIGHTS; i++) {
        if (length(directLights[i].direction) > 0.0) {
            light += phong(n, v, normalize(directLights[i].direction), directLights[i].color);
        }
    }
    for (int i = 0; i < POINT_LIGHTS; i++) {
        vec3 d = pointLights[i].position - fragPos;
        float dist = length(d);
        float atten = 1.0 / (1.0 + 0.09 * dist + 0.032 * dist * dist);
        light += atten * phong(n, v, d / max(dist, 1e-4), pointLights[i].color);
    }
    for (int i = 0; i < FLASH_LIGHTS; i++) {
        vec3 d = flashLights[i].position - fragPos;
        float dist = length(d);
        vec3 toLight = d / max(dist, 1e-4);
        float theta = dot(-toLight, normalize(flashLights[i].direction + vec3(0.0, 0.0, 1e-6)));
        float inner = cos(flashLights[i].angle);
        float outer = cos(flashLights[i].angle + flashLights[i].cutoff);
        float cone = clamp((theta - outer) / max(inner - outer, 1e-4), 0.0, 1.0);
        light += cone * phong(n, v, toLight, flashLights[i].color);
    }

    vec3 base = texture(main_texture, fragUV).rgb * material.color;
    outColor = vec4(base * light, 1.0);
}
`

const flatVertexSrc = `
#version 410 core

layout(location = 0) in vec2 inPosition;

void main() {
    gl_Position = vec4(inPosition, 0.0, 1.0);
}
`

const flatFragmentSrc = `
#version 410 core

uniform vec4 color;

out vec4 outColor;

void main() {
    outColor = color;
}
`
